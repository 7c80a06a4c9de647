package dto

// LoginRequest entrada de login: solo el email (acceso por allow-list,
// sin contraseña).
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse salida con token JWT y la identidad resuelta.
type LoginResponse struct {
	Token  string          `json:"token"`
	Role   string          `json:"role"` // "Líder" | "Asesor"
	UserID string          `json:"userId"`
	Nombre string          `json:"nombre"`
	Email  string          `json:"email"`
	Asesor *AsesorResponse `json:"asesor,omitempty"` // solo para rol Asesor
}
