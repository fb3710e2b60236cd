package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	// Las cantidades se exponen como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductEntry producto anidado dentro de un bloque de datos de bodega.
// Es la fuente de verdad; la colección plana de productos se deriva de estas entradas.
type ProductEntry struct {
	ProductID       string          `json:"productID" bson:"productID"`
	ProductName     string          `json:"productName" bson:"productName"`
	ProductQuantity decimal.Decimal `json:"productQuantity" bson:"productQuantity"`
}

// WarehouseData bloque de datos de una bodega. Solo el primer bloque recibe push/pull.
// Los campos no reconocidos se conservan en Extra.
type WarehouseData struct {
	ProductData []ProductEntry         `json:"productData" bson:"productData"`
	Extra       map[string]interface{} `json:"-" bson:",inline"`
}

// Warehouse documento de bodega. WarehouseID es la clave única de negocio;
// ObjectID es el _id asignado por el almacenamiento. Cualquier metadato adicional
// del documento viaja en Extra (JSON y BSON).
type Warehouse struct {
	ObjectID      *primitive.ObjectID    `json:"_id,omitempty" bson:"_id,omitempty"`
	WarehouseID   int                    `json:"warehouseID" bson:"warehouseID"`
	WarehouseData []WarehouseData        `json:"warehouseData" bson:"warehouseData"`
	Extra         map[string]interface{} `json:"-" bson:",inline"`
}

// Normalize reemplaza listas nil por listas vacías para que el almacenamiento
// persista arreglos y no null (un $push sobre null falla).
func (w *Warehouse) Normalize() {
	if w.WarehouseData == nil {
		w.WarehouseData = []WarehouseData{}
	}
	for i := range w.WarehouseData {
		if w.WarehouseData[i].ProductData == nil {
			w.WarehouseData[i].ProductData = []ProductEntry{}
		}
	}
}

// MarshalJSON aplana Extra junto a los campos conocidos.
func (w Warehouse) MarshalJSON() ([]byte, error) {
	out := withExtra(w.Extra, 3)
	if w.ObjectID != nil {
		out["_id"] = w.ObjectID
	}
	out["warehouseID"] = w.WarehouseID
	data := w.WarehouseData
	if data == nil {
		data = []WarehouseData{}
	}
	out["warehouseData"] = data
	return json.Marshal(out)
}

// UnmarshalJSON separa los campos conocidos y guarda el resto en Extra.
func (w *Warehouse) UnmarshalJSON(b []byte) error {
	var known struct {
		ObjectID      *primitive.ObjectID `json:"_id"`
		WarehouseID   int                 `json:"warehouseID"`
		WarehouseData []WarehouseData     `json:"warehouseData"`
	}
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}
	extra, err := splitExtra(b, "_id", "warehouseID", "warehouseData")
	if err != nil {
		return err
	}
	*w = Warehouse{
		ObjectID:      known.ObjectID,
		WarehouseID:   known.WarehouseID,
		WarehouseData: known.WarehouseData,
		Extra:         extra,
	}
	return nil
}

// MarshalJSON aplana Extra junto a productData.
func (d WarehouseData) MarshalJSON() ([]byte, error) {
	out := withExtra(d.Extra, 1)
	products := d.ProductData
	if products == nil {
		products = []ProductEntry{}
	}
	out["productData"] = products
	return json.Marshal(out)
}

// UnmarshalJSON separa productData del resto de campos del bloque.
func (d *WarehouseData) UnmarshalJSON(b []byte) error {
	var known struct {
		ProductData []ProductEntry `json:"productData"`
	}
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}
	extra, err := splitExtra(b, "productData")
	if err != nil {
		return err
	}
	*d = WarehouseData{ProductData: known.ProductData, Extra: extra}
	return nil
}

func withExtra(extra map[string]interface{}, known int) map[string]interface{} {
	out := make(map[string]interface{}, len(extra)+known)
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func splitExtra(b []byte, known ...string) (map[string]interface{}, error) {
	var all map[string]interface{}
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}
