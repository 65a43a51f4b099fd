package dto

// ErrorResponse error genérico de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
