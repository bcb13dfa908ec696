package service

import (
	"errors"
	"fmt"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FactorService manages the factor registry used for weighted aggregation.
type FactorService interface {
	Create(actor model.Actor, req dto.FactorCreateDTO) (*dto.FactorResponseDTO, error)
	GetAll(factorType string) ([]dto.FactorResponseDTO, error)
	Update(id uint, req dto.FactorUpdateDTO) (*dto.FactorResponseDTO, error)
	Delete(id uint) error
}

type factorService struct {
	factorRepo repository.FactorRepository
}

func NewFactorService(factorRepo repository.FactorRepository) FactorService {
	return &factorService{factorRepo: factorRepo}
}

func (s *factorService) Create(actor model.Actor, req dto.FactorCreateDTO) (*dto.FactorResponseDTO, error) {
	weight := 1.0
	if req.Weight != nil {
		weight = *req.Weight
	}
	if err := validateWeight(weight); err != nil {
		return nil, err
	}

	factorType := req.Type
	if factorType == "" {
		factorType = model.FactorTypeNonTurnover
	}

	factor := model.Factor{
		Name:        req.Name,
		Description: req.Description,
		Type:        factorType,
		Weight:      weight,
		CreatedByID: &actor.UserID,
	}
	if err := s.factorRepo.Create(&factor); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create factor")
		return nil, fmt.Errorf("creating factor: %w", err)
	}
	return factorToDTO(&factor), nil
}

func (s *factorService) GetAll(factorType string) ([]dto.FactorResponseDTO, error) {
	factors, err := s.factorRepo.FindAll(factorType)
	if err != nil {
		return nil, fmt.Errorf("fetching factors: %w", err)
	}
	dtos := make([]dto.FactorResponseDTO, 0, len(factors))
	for i := range factors {
		dtos = append(dtos, *factorToDTO(&factors[i]))
	}
	return dtos, nil
}

func (s *factorService) Update(id uint, req dto.FactorUpdateDTO) (*dto.FactorResponseDTO, error) {
	factor, err := s.factorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("factor not found", err)
		}
		return nil, fmt.Errorf("resolving factor %d: %w", id, err)
	}

	if req.Name != nil {
		factor.Name = *req.Name
	}
	if req.Description != nil {
		factor.Description = *req.Description
	}
	if req.Type != nil {
		factor.Type = *req.Type
	}
	if req.Weight != nil {
		if err := validateWeight(*req.Weight); err != nil {
			return nil, err
		}
		factor.Weight = *req.Weight
	}

	if err := s.factorRepo.Update(factor); err != nil {
		return nil, fmt.Errorf("updating factor %d: %w", id, err)
	}
	return factorToDTO(factor), nil
}

func (s *factorService) Delete(id uint) error {
	if _, err := s.factorRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFound("factor not found", err)
		}
		return fmt.Errorf("resolving factor %d: %w", id, err)
	}
	return s.factorRepo.Delete(id)
}

func validateWeight(weight float64) error {
	if weight < model.FactorWeightMin || weight > model.FactorWeightMax {
		return apperror.NewValidation(
			fmt.Sprintf("weight must be between %g and %g", model.FactorWeightMin, model.FactorWeightMax), nil)
	}
	return nil
}

func factorToDTO(factor *model.Factor) *dto.FactorResponseDTO {
	var resp dto.FactorResponseDTO
	copier.Copy(&resp, factor)
	return &resp
}
