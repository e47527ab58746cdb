package dto

// TokenRequest carries the identity claims presented for credential issuance.
// The email is the identity key; a directory record is ensured for it before
// a token is signed.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse returns the signed credential. The same token is also set as
// an HTTP-only cookie so the caller may use either presentation.
type TokenResponse struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
}
