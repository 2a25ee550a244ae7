package media

// Repository defines read access to the image registries.
type Repository interface {
	// PhotoSet retrieves the curated photo set by exact slug.
	PhotoSet(slug string) (*ImageSet, bool)

	// LegacySet retrieves the legacy verified image set by exact slug.
	LegacySet(slug string) (*ImageSet, bool)
}
