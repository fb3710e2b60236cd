package mongodb

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"

	"github.com/jhoicas/bodega-sync-api/internal/domain/entity"
)

// ExtJSONParser lee exportaciones de MongoDB en Extended JSON (canónico o relajado):
// un arreglo JSON (Compass, mongoexport --jsonArray) o un documento por línea
// (mongoexport por defecto). Conserva $oid, $date y el resto de tipos extendidos.
type ExtJSONParser struct {
	reg *bsoncodec.Registry
}

// NewExtJSONParser construye el parser con el registro de la aplicación (codec decimal).
func NewExtJSONParser() *ExtJSONParser {
	return &ExtJSONParser{reg: NewRegistry()}
}

// Parse decodifica todos los documentos de bodega de r.
func (p *ExtJSONParser) Parse(r io.Reader) ([]*entity.Warehouse, error) {
	br := bufio.NewReader(r)
	first, err := firstNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []*entity.Warehouse{}, nil
		}
		return nil, fmt.Errorf("leer Extended JSON: %w", err)
	}

	dec := json.NewDecoder(br)
	var raws []json.RawMessage
	if first == '[' {
		if err := dec.Decode(&raws); err != nil {
			return nil, fmt.Errorf("leer arreglo Extended JSON: %w", err)
		}
	} else {
		for {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("leer documento %d: %w", len(raws)+1, err)
			}
			raws = append(raws, raw)
		}
	}

	out := make([]*entity.Warehouse, 0, len(raws))
	for i, raw := range raws {
		w, err := p.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("documento %d: %w", i+1, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func (p *ExtJSONParser) decode(raw []byte) (*entity.Warehouse, error) {
	vr, err := bsonrw.NewExtJSONValueReader(bytes.NewReader(raw), false)
	if err != nil {
		return nil, err
	}
	dec, err := bson.NewDecoder(vr)
	if err != nil {
		return nil, err
	}
	if err := dec.SetRegistry(p.reg); err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var w entity.Warehouse
	if err := dec.Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n', 0xEF, 0xBB, 0xBF: // espacios y BOM UTF-8
			continue
		}
		return b, br.UnreadByte()
	}
}
