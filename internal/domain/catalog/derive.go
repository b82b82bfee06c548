package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// SortOption criterio de orden del listado.
type SortOption string

// Opciones de orden soportadas. Latest es además el fallback para valores
// no reconocidos. Popularity usa el id como sustituto: no existe una métrica
// real de popularidad en el API y se conserva el comportamiento por
// compatibilidad.
const (
	SortLatest     SortOption = "latest"
	SortPriceLow   SortOption = "price_low"
	SortPriceHigh  SortOption = "price_high"
	SortPopularity SortOption = "popularity"
)

// ParseSortOption normaliza un valor externo; cualquier valor desconocido
// cae en SortLatest, nunca falla.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceLow, SortPriceHigh, SortPopularity, SortLatest:
		return SortOption(s)
	}
	return SortLatest
}

// FilterAndSort deriva la vista del catálogo: filtra por query (substring sin
// distinguir mayúsculas sobre nombre y descripciones) y ordena el resultado
// según la opción. Es pura: no muta products y el orden es estable, de modo
// que empates de precio o id conservan el orden de entrada.
func FilterAndSort(products []Product, query string, option SortOption) []Product {
	filtered := filterByQuery(products, query)

	out := make([]Product, len(filtered))
	copy(out, filtered)

	switch option {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().LessThan(out[j].EffectivePrice())
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().GreaterThan(out[j].EffectivePrice())
		})
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	default: // latest y cualquier valor no reconocido
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// fold pliega mayúsculas/minúsculas para comparación insensible (Unicode).
var fold = cases.Fold()

func filterByQuery(products []Product, query string) []Product {
	if query == "" {
		return products
	}
	q := fold.String(query)
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), q) ||
			(p.Description != "" && strings.Contains(fold.String(p.Description), q)) ||
			(p.ShortDescription != "" && strings.Contains(fold.String(p.ShortDescription), q)) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
