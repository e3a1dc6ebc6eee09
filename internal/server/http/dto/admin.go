package dto

// CreateAccountRequest describes admin account provisioning payload.
type CreateAccountRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// RoleAssignmentRequest grants or revokes a single role tag.
type RoleAssignmentRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Grant    bool   `json:"grant"`
}

// AdminScanRequest carries the unit count for a multi-unit scan.
type AdminScanRequest struct {
	Amount int `json:"amount"`
}

// UserResponse describes an account in admin responses.
type UserResponse struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	CoffeeCount int      `json:"coffeeCount"`
}

// StatsResponse aggregates loyalty counters.
type StatsResponse struct {
	UsedCards int64 `json:"usedCards"`
}
