package brand

// Repository defines read access to the brand registries.
// Implementations are immutable after load; List returns registry order.
type Repository interface {
	// List returns all navigation records in registry order.
	List() []Brand

	// Get retrieves a navigation record by exact slug.
	Get(slug string) (*Brand, bool)

	// GetProfile retrieves a content profile by exact slug.
	GetProfile(slug string) (*Profile, bool)
}
