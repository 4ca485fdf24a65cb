package authclient

// User is the identity returned by the remote API.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse is returned by a successful signup or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=255"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// errorResponse is the error body shape of the remote API. Detail is usually
// a string but validation failures send a list, so it stays raw.
type errorResponse struct {
	Detail any `json:"detail"`
}
