package category

// Repository defines read access to the category registry.
type Repository interface {
	// List returns all categories in registry order.
	List() []Category

	// Get retrieves a category by exact slug.
	Get(slug string) (*Category, bool)
}
