package dto

import "time"

// RegisterRequest Eingabe für die Registrierung (Passwort im Klartext, wird im
// Use Case gehasht).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin viewer"`
}

// UserResponse Ausgabe eines Benutzers (ohne Passwort-Hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest Eingabe für den Login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse Ausgabe mit JWT und Benutzer.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
