package product

// Repository defines read access to the product registry.
type Repository interface {
	// List returns all products in registry order.
	List() []Product

	// Get retrieves a product by exact slug.
	Get(slug string) (*Product, bool)
}
