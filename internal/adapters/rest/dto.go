package rest

import (
	"time"
	"wareland-api/internal/core/domain"
)

type SellerResponse struct {
	UserID      int64     `json:"userId"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CatalogEntryResponse struct {
	PropertyID  int64           `json:"propertyId"`
	Address     string          `json:"address"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Seller      *SellerResponse `json:"seller"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"required,min=8,bcryptlen,strongpassword"`
	Role        string `json:"role" validate:"omitempty,oneof=BUYER SELLER"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/users/me. Every field is optional.
type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" validate:"omitempty,min=8,bcryptlen,strongpassword"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  *SellerResponse `json:"user"`
}

func toSellerResponse(s *domain.Seller) *SellerResponse {
	if s == nil {
		return nil
	}
	return &SellerResponse{
		UserID:      s.UserID,
		Username:    s.Username,
		Name:        s.Name,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Role:        s.Role,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toCatalogEntryResponse(e *domain.CatalogEntry) *CatalogEntryResponse {
	if e == nil {
		return nil
	}
	return &CatalogEntryResponse{
		PropertyID:  e.PropertyID,
		Address:     e.Address,
		Price:       e.Price,
		Description: e.Description,
		Seller:      toSellerResponse(e.Seller),
	}
}

func toCatalogEntryResponses(entries []domain.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toCatalogEntryResponse(&entries[i]))
	}
	return out
}
