package dto

// SeedResponse salida de GET /insert.
type SeedResponse struct {
	Message    string             `json:"message"`
	Warehouses int                `json:"warehouses"`
	Projection ProjectionResponse `json:"projection"`
}
