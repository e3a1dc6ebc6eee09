package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the credential payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse describes the account returned by register and login.
type AuthResponse struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
	CoffeeCount int      `json:"coffeeCount"`
	QRCodeURL   string   `json:"qrCodeUrl"`
}
