package entity

import "github.com/shopspring/decimal"

// Product registro plano y derivado de la colección product, con clave productID.
// Lo reconstruye la pasada de proyección a partir de las entradas anidadas; ID replica
// productID igual que el _id del documento materializado.
type Product struct {
	ID              string          `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductID       string          `json:"productID" bson:"productID"`
	ProductName     string          `json:"productName" bson:"productName"`
	ProductQuantity decimal.Decimal `json:"productQuantity" bson:"productQuantity"`
}

// ProductFromEntry proyecta una entrada anidada al registro plano (solo los tres campos).
func ProductFromEntry(e ProductEntry) Product {
	return Product{
		ID:              e.ProductID,
		ProductID:       e.ProductID,
		ProductName:     e.ProductName,
		ProductQuantity: e.ProductQuantity,
	}
}
