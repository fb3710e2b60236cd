package mongodb

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tDecimal = reflect.TypeOf(decimal.Decimal{})

// NewRegistry devuelve el registro BSON por defecto más el codec de decimal.Decimal.
// Se escribe como Decimal128 conservando la escala; al leer también acepta int32, int64, double y string
// (exportaciones con NumberInt/NumberLong o cantidades como texto).
func NewRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tDecimal, bsoncodec.ValueEncoderFunc(encodeDecimal))
	reg.RegisterTypeDecoder(tDecimal, bsoncodec.ValueDecoderFunc(decodeDecimal))
	return reg
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDecimal {
		return bsoncodec.ValueEncoderError{Name: "DecimalEncodeValue", Types: []reflect.Type{tDecimal}, Received: val}
	}
	d := val.Interface().(decimal.Decimal)
	// Coeficiente y exponente tal cual: 12.50 se guarda como 1250E-2, no como 12.5.
	d128, ok := primitive.ParseDecimal128FromBigInt(d.Coefficient(), int(d.Exponent()))
	if !ok {
		return fmt.Errorf("decimal %s fuera del rango de Decimal128", d.String())
	}
	return vw.WriteDecimal128(d128)
}

func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDecimal {
		return bsoncodec.ValueDecoderError{Name: "DecimalDecodeValue", Types: []reflect.Type{tDecimal}, Received: val}
	}

	var (
		d   decimal.Decimal
		err error
	)
	switch t := vr.Type(); t {
	case bsontype.Decimal128:
		var v primitive.Decimal128
		if v, err = vr.ReadDecimal128(); err == nil {
			d, err = decimal.NewFromString(v.String())
		}
	case bsontype.Int32:
		var v int32
		if v, err = vr.ReadInt32(); err == nil {
			d = decimal.NewFromInt32(v)
		}
	case bsontype.Int64:
		var v int64
		if v, err = vr.ReadInt64(); err == nil {
			d = decimal.NewFromInt(v)
		}
	case bsontype.Double:
		var v float64
		if v, err = vr.ReadDouble(); err == nil {
			d = decimal.NewFromFloat(v)
		}
	case bsontype.String:
		var v string
		if v, err = vr.ReadString(); err == nil {
			d, err = decimal.NewFromString(v)
		}
	case bsontype.Null:
		err = vr.ReadNull()
	default:
		return fmt.Errorf("no se puede decodificar %s en decimal.Decimal", t)
	}
	if err != nil {
		return fmt.Errorf("decodificar decimal: %w", err)
	}
	val.Set(reflect.ValueOf(d))
	return nil
}
