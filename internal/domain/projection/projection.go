// Package projection contiene las reglas puras que derivan la colección plana de
// productos a partir de las entradas anidadas en las bodegas.
package projection

import "github.com/jhoicas/bodega-sync-api/internal/domain/entity"

// Flatten recorre bodegas, bloques y entradas en ese orden (el mismo orden que
// producen los $unwind de la agregación) y devuelve todas las entradas anidadas.
func Flatten(warehouses []*entity.Warehouse) []entity.ProductEntry {
	var out []entity.ProductEntry
	for _, w := range warehouses {
		if w == nil {
			continue
		}
		for _, block := range w.WarehouseData {
			out = append(out, block.ProductData...)
		}
	}
	return out
}

// Project reduce las entradas aplanadas a un registro por productID.
// Si un productID se repite gana la última entrada procesada; el orden de salida es el
// de la primera aparición, así que materializar el resultado en orden deja el mismo
// estado que aplicar un upsert por cada entrada.
func Project(entries []entity.ProductEntry) []entity.Product {
	index := make(map[string]int, len(entries))
	out := make([]entity.Product, 0, len(entries))
	for _, e := range entries {
		p := entity.ProductFromEntry(e)
		if i, ok := index[e.ProductID]; ok {
			out[i] = p
			continue
		}
		index[e.ProductID] = len(out)
		out = append(out, p)
	}
	return out
}

// Stale devuelve, en el orden recibido, los IDs existentes que ya no aparecen en la proyección.
func Stale(existing []string, projected []entity.Product) []string {
	keep := make(map[string]struct{}, len(projected))
	for _, p := range projected {
		keep[p.ProductID] = struct{}{}
	}
	var stale []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	return stale
}
