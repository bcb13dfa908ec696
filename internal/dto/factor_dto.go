package dto

import "time"

// FactorCreateDTO is the HR/admin payload for creating a weighting factor.
// Weight defaults to 1.0 when omitted.
type FactorCreateDTO struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type" binding:"omitempty,oneof=TURNOVER NON_TURNOVER"`
	Weight      *float64 `json:"weight" binding:"omitempty,min=0.1,max=10"`
}

type FactorUpdateDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Type        *string  `json:"type" binding:"omitempty,oneof=TURNOVER NON_TURNOVER"`
	Weight      *float64 `json:"weight" binding:"omitempty,min=0.1,max=10"`
}

type FactorResponseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Weight      float64   `json:"weight"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
