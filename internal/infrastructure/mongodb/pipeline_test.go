package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFlattenPipeline_Etapas(t *testing.T) {
	p := flattenPipeline()
	require.Len(t, p, 3)

	assert.Equal(t, "$unwind", p[0][0].Key)
	assert.Equal(t, "$warehouseData", p[0][0].Value)
	assert.Equal(t, "$unwind", p[1][0].Key)
	assert.Equal(t, "$warehouseData.productData", p[1][0].Value)

	assert.Equal(t, "$project", p[2][0].Key)
	project, ok := p[2][0].Value.(bson.D)
	require.True(t, ok)
	fields := project.Map()
	assert.Equal(t, 0, fields["_id"])
	assert.Equal(t, "$warehouseData.productData.productID", fields["productID"])
	assert.Equal(t, "$warehouseData.productData.productName", fields["productName"])
	assert.Equal(t, "$warehouseData.productData.productQuantity", fields["productQuantity"])
}
