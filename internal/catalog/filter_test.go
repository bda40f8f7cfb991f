package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda-arte/internal/models"
)

func product(name, description, category string, stock int) models.Product {
	p := models.Product{Name: name, Description: description, Stock: stock}
	if category != "" {
		p.Category = &models.Category{Name: category}
	}
	return p
}

func sampleProducts() []models.Product {
	return []models.Product{
		product("Gato acuarela", "Pintura", "Pinturas", 3),
		product("Pin esmaltado", "Gato dorado", "Pines", 0),
	}
}

func TestFilterSearchMatchesNameAndDescription(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, AllCategories, "gato")

	assert.Len(t, got, 2, "match por nombre en el primero y por descripción en el segundo")
	assert.Equal(t, "Gato acuarela", got[0].Name)
	assert.Equal(t, "Pin esmaltado", got[1].Name)
}

func TestFilterCategoryAndSearchCombined(t *testing.T) {
	got := Filter(sampleProducts(), "Pinturas", "gato")

	assert.Len(t, got, 1)
	assert.Equal(t, "Gato acuarela", got[0].Name)
}

func TestFilterCategoryGateIsCaseSensitive(t *testing.T) {
	got := Filter(sampleProducts(), "pinturas", "")

	assert.Empty(t, got)
}

func TestFilterSearchMatchesCategoryName(t *testing.T) {
	got := Filter(sampleProducts(), AllCategories, "pines")

	assert.Len(t, got, 1)
	assert.Equal(t, "Pin esmaltado", got[0].Name)
}

func TestFilterWhitespaceQueryIsNoOp(t *testing.T) {
	products := sampleProducts()

	assert.Equal(t, products, Filter(products, AllCategories, ""))
	assert.Equal(t, products, Filter(products, AllCategories, "   "))
	assert.Equal(t, products, Filter(products, AllCategories, "\t \n"))
}

func TestFilterIsIdempotent(t *testing.T) {
	products := sampleProducts()

	once := Filter(products, "Pinturas", "gato")
	twice := Filter(once, "Pinturas", "gato")

	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrder(t *testing.T) {
	products := []models.Product{
		product("a gato", "", "Pines", 1),
		product("b", "gato", "Pinturas", 1),
		product("c", "perro", "Pines", 1),
		product("d gato", "", "Pines", 1),
	}

	got := Filter(products, AllCategories, "gato")

	assert.Equal(t, []string{"a gato", "b", "d gato"}, names(got))
}

func TestFilterGatesComposeAsAND(t *testing.T) {
	products := []models.Product{
		product("Gato acuarela", "Pintura", "Pinturas", 3),
		product("Pin esmaltado", "Gato dorado", "Pines", 0),
		product("Taza gato", "Cerámica", "Pinturas", 2),
	}

	direct := Filter(products, "Pinturas", "gato")
	searchFirst := Filter(Filter(products, AllCategories, "gato"), "Pinturas", "")
	categoryFirst := Filter(Filter(products, "Pinturas", ""), AllCategories, "gato")

	assert.Equal(t, direct, searchFirst)
	assert.Equal(t, direct, categoryFirst)
}

func TestFilterUnknownCategoryYieldsEmpty(t *testing.T) {
	got := Filter(sampleProducts(), "Esculturas", "")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterProductWithoutCategory(t *testing.T) {
	products := []models.Product{
		product("Gato sin categoría", "suelto", "", 1),
		product("Gato acuarela", "Pintura", "Pinturas", 3),
	}

	// Cualquier pestaña distinta de "all" lo excluye
	assert.Equal(t, []string{"Gato acuarela"}, names(Filter(products, "Pinturas", "")))

	// Pero la búsqueda lo alcanza por nombre sin romperse
	assert.Equal(t, []string{"Gato sin categoría", "Gato acuarela"}, names(Filter(products, AllCategories, "gato")))
}

func TestCategoryCountsOverUnfilteredList(t *testing.T) {
	products := []models.Product{
		product("Gato acuarela", "Pintura", "Pinturas", 3),
		product("Pin esmaltado", "Gato dorado", "Pines", 0),
		product("Taza", "Cerámica", "Pinturas", 2),
	}
	categories := []models.Category{{Name: "Pinturas"}, {Name: "Pines"}, {Name: "Esculturas"}}

	counts := CategoryCounts(products, categories)

	assert.Equal(t, 3, counts[AllCategories])
	assert.Equal(t, 2, counts["Pinturas"])
	assert.Equal(t, 1, counts["Pines"])
	assert.Equal(t, 0, counts["Esculturas"])
}

func TestCategoryCountsIgnoreActiveFilters(t *testing.T) {
	products := sampleProducts()
	categories := []models.Category{{Name: "Pinturas"}, {Name: "Pines"}}

	// Los contadores se calculan siempre sobre la lista sin filtrar: da igual
	// qué pestaña o búsqueda esté activa en la vista.
	view := NewView()
	view.ApplyLoad(&Storefront{Products: products, Categories: categories})
	base := view.Counts()

	view.SelectCategory("Pines")
	view.SetSearch("gato")

	assert.Equal(t, base, view.Counts())
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}
