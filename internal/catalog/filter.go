package catalog

import (
	"strings"

	"tienda-arte/internal/models"
)

// AllCategories es la pestaña que no restringe por categoría
const AllCategories = "all"

// Filter devuelve el subconjunto visible del catálogo: primero la compuerta de
// categoría (igualdad exacta de nombre), después la de búsqueda (substring sin
// mayúsculas sobre nombre, descripción o nombre de categoría). Es una función
// pura y conserva el orden relativo de entrada.
func Filter(products []models.Product, selectedCategory, searchQuery string) []models.Product {
	filtered := products

	if selectedCategory != AllCategories {
		matched := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.Category != nil && p.Category.Name == selectedCategory {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	// La consulta de solo espacios se comporta como "sin búsqueda"
	if query := strings.ToLower(strings.TrimSpace(searchQuery)); query != "" {
		matched := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Description), query) ||
				(p.Category != nil && strings.Contains(strings.ToLower(p.Category.Name), query)) {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	return filtered
}

// CategoryCounts calcula el contador de cada pestaña sobre la lista SIN
// filtrar: los números de las pestañas no dependen de la búsqueda activa
// ni de la pestaña seleccionada.
func CategoryCounts(products []models.Product, categories []models.Category) map[string]int {
	counts := make(map[string]int, len(categories)+1)
	counts[AllCategories] = len(products)

	for _, c := range categories {
		n := 0
		for _, p := range products {
			if p.Category != nil && p.Category.Name == c.Name {
				n++
			}
		}
		counts[c.Name] = n
	}
	return counts
}
