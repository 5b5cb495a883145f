package domain

import (
	"errors"
	"fmt"
)

// Domänenfehler (ohne externe Abhängigkeiten).
var (
	ErrNotFound           = errors.New("ressource nicht gefunden")
	ErrUserNotFound       = errors.New("benutzer nicht gefunden")
	ErrEmailAlreadyExists = errors.New("die E-Mail ist bereits registriert")
	ErrInvalidInput       = errors.New("ungültige Eingabe")
	ErrUnauthorized       = errors.New("nicht autorisiert")
	ErrForbidden          = errors.New("zugriff verweigert")
)

// ValidationError kennzeichnet eine Rohbestellung ohne erforderliche Grundstruktur
// (fehlende Id, CreatedAt oder Positionsliste). Der betroffene Datensatz wird
// übersprungen und geloggt; der restliche Tag läuft weiter.
type ValidationError struct {
	OrderID string // falls ermittelbar, sonst leer
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("ungültige Bestellung: %s", e.Reason)
	}
	return fmt.Sprintf("ungültige Bestellung %s: %s", e.OrderID, e.Reason)
}

// IsValidation meldet, ob err ein ValidationError ist.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
