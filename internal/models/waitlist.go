package models

// RegisteredMessage is returned for every accepted registration.
const RegisteredMessage = "Email registered successfully!"

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Email string `json:"email"`
}

// RegisterResponse is the JSON body returned by POST /api/register.
type RegisterResponse struct {
	Message string `json:"message"`
}
