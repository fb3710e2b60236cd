package dto

// ErrorResponse cuerpo de error HTTP. Message conserva el texto descriptivo de cada caso.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de las respuestas de escritura exitosas.
type MessageResponse struct {
	Message string `json:"message"`
}
