package entity

// Category agrupa los productos del catálogo (dato de referencia fijo).
type Category struct {
	ID   int
	Name string
}

// SeedCategories devuelve las cinco categorías fijas del negocio de autopartes.
// Se insertan de forma idempotente al arrancar; no son extensibles por el usuario.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Motor"},
		{ID: 2, Name: "Suspensión"},
		{ID: 3, Name: "Frenos"},
		{ID: 4, Name: "Eléctrica"},
		{ID: 5, Name: "Accesorios"},
	}
}
