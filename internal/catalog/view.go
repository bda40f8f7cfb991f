package catalog

import "tienda-arte/internal/models"

// View es el estado de una vista de página: la foto cargada más la pestaña y
// la búsqueda elegidas. La lista visible no se guarda, se deriva con Filter en
// cada lectura; así no puede quedar desincronizada del resto del estado.
type View struct {
	Storefront       *Storefront
	SelectedCategory string
	SearchQuery      string
}

func NewView() *View {
	return &View{SelectedCategory: AllCategories}
}

// ApplyLoad aplica el resultado del cargador sobre la vista
func (v *View) ApplyLoad(s *Storefront) {
	v.Storefront = s
}

// SelectCategory cambia la pestaña activa. Vacío vuelve a "all".
func (v *View) SelectCategory(name string) {
	if name == "" {
		name = AllCategories
	}
	v.SelectedCategory = name
}

// SetSearch cambia el texto de búsqueda
func (v *View) SetSearch(query string) {
	v.SearchQuery = query
}

// VisibleProducts deriva la lista visible con los filtros actuales
func (v *View) VisibleProducts() []models.Product {
	if v.Storefront == nil {
		return []models.Product{}
	}
	return Filter(v.Storefront.Products, v.SelectedCategory, v.SearchQuery)
}

// Counts deriva los contadores de pestañas sobre la lista sin filtrar
func (v *View) Counts() map[string]int {
	if v.Storefront == nil {
		return map[string]int{AllCategories: 0}
	}
	return CategoryCounts(v.Storefront.Products, v.Storefront.Categories)
}
