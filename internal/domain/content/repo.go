package content

// Repository defines read access to the localized content registry.
type Repository interface {
	// Get retrieves the text record by exact slug.
	Get(slug string) (*Text, bool)
}
