package service

import (
	"errors"
	"fmt"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"gorm.io/gorm"
)

// DirectoryService resolves caller identity from the read-only directory
// tables. Stands in for the identity/authorization collaborator until real
// auth middleware fronts the API.
type DirectoryService interface {
	ResolveActor(userID uint) (model.Actor, error)
}

type directoryService struct {
	userRepo repository.UserRepository
}

func NewDirectoryService(userRepo repository.UserRepository) DirectoryService {
	return &directoryService{userRepo: userRepo}
}

func (s *directoryService) ResolveActor(userID uint) (model.Actor, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Actor{}, apperror.NewNotFound("user not found", err)
		}
		return model.Actor{}, fmt.Errorf("resolving user %d: %w", userID, err)
	}
	return model.Actor{
		UserID:       user.ID,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
	}, nil
}
