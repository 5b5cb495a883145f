package entity

import "time"

// Benutzerrollen: admin darf Kostentabellen ändern und Importe anstoßen,
// viewer nur Berichte lesen.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User ein Benutzer der Anwendung.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleViewer
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
