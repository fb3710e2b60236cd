package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
)

// ProductEntryRequest entrada para agregar un producto a una bodega.
type ProductEntryRequest struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	ProductQuantity decimal.Decimal `json:"productQuantity"`
}

// ToEntry convierte la petición en la entrada anidada.
func (r ProductEntryRequest) ToEntry() entity.ProductEntry {
	return entity.ProductEntry{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		ProductQuantity: r.ProductQuantity,
	}
}

// AddProductResponse salida de POST /product/{id}.
type AddProductResponse struct {
	Message    string             `json:"message"`
	Projection ProjectionResponse `json:"projection"`
}

// DeleteProductResponse salida de DELETE /product/{id}.
type DeleteProductResponse struct {
	Message            string `json:"message"`
	FlatDeleted        bool   `json:"flatDeleted"`
	WarehousesModified int64  `json:"warehousesModified"`
}

// ProjectionResponse resumen de la pasada de proyección ejecutada por la petición.
type ProjectionResponse struct {
	RunID    string `json:"runID"`
	Entries  int    `json:"entries"`
	Upserted int64  `json:"upserted"`
	Pruned   int64  `json:"pruned"`
}
