package dto

// LoginRequest is the login stub payload. Any well-formed name and email is
// accepted; there are no credentials.
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse returns the signed session token and the user echo
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
