package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserClaims proyección de la identidad autenticada (sin hash).
type UserClaims struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT y la identidad autenticada.
type LoginResponse struct {
	Token string     `json:"token"`
	User  UserClaims `json:"user"`
}
