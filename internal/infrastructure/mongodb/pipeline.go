package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// flattenPipeline desanida warehouseData y productData y deja solo los campos del
// producto plano. El orden de salida es el orden natural de la colección seguido del
// orden de bloques y entradas, que es el que decide qué copia gana ante IDs repetidos.
func flattenPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$warehouseData"}},
		{{Key: "$unwind", Value: "$warehouseData.productData"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "productID", Value: "$warehouseData.productData.productID"},
			{Key: "productName", Value: "$warehouseData.productData.productName"},
			{Key: "productQuantity", Value: "$warehouseData.productData.productQuantity"},
		}}},
	}
}
