package dto

import "strings"

// Email format is not checked here; the roster decides whether an address is known.
type VerifyIdentityRequest struct {
	Email string `json:"email" validate:"required"`
	DNI   string `json:"dni" validate:"required"`
}

func (r *VerifyIdentityRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	DNI      string `json:"dni" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *SignupRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

// Password strength is checked by the service so the roster is never consulted for weak input.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	DNI         string `json:"dni" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

func (r *ResetPasswordRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}
