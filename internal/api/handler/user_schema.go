package handler

import "time"

type registerRequest struct {
	Email     string `json:"email" validate:"required,user_email"`
	FirstName string `json:"first_name" validate:"required,user_name"`
	LastName  string `json:"last_name" validate:"required,user_name"`
	Role      string `json:"role" validate:"required,user_role"`
	// Pointer so that an explicit false still satisfies required.
	IsActive *bool  `json:"is_active" validate:"required"`
	Password string `json:"password" validate:"required,user_password"`
}

// updateUserRequest is a partial update; absent fields are left untouched.
type updateUserRequest struct {
	Email     *string    `json:"email" validate:"omitempty,user_email"`
	FirstName *string    `json:"first_name" validate:"omitempty,user_name"`
	LastName  *string    `json:"last_name" validate:"omitempty,user_name"`
	Role      *string    `json:"role" validate:"omitempty,user_role"`
	IsActive  *bool      `json:"is_active"`
	Password  *string    `json:"password" validate:"omitempty,user_password"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt *time.Time `json:"created_at"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
}

// authResponse mirrors the OAuth2 bearer envelope. The refresh token is
// only present on login; a refresh exchange returns just a new access token.
type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	Success      bool   `json:"success"`
}

type deleteResponse struct {
	UserID  string `json:"user_id"`
	Success bool   `json:"success"`
}
