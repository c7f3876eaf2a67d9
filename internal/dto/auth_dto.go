package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	BusinessName string `json:"business_name" validate:"required,max=255"`
	OwnerEmail   string `json:"owner_email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	Id         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"owner_email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	BusinessName string `json:"business_name"`
}
