package dto

// ErrorResponse HTTP-Fehlerkörper. Code ist maschinenlesbar und stabil,
// Message für Menschen.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
