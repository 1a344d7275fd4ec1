package cache

// Keyer derives cache keys for the pipeline stages. Layout keys depend on
// the scene content; artifact keys depend on the layout and output format.
type Keyer interface {
	// LayoutKey generates a key for layout result caching.
	LayoutKey(sceneHash string) string

	// ArtifactKey generates a key for rendered artifact caching.
	ArtifactKey(layoutHash, format string) string
}

// DefaultKeyer derives keys by hashing the inputs under a stage prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout result caching.
func (k *DefaultKeyer) LayoutKey(sceneHash string) string {
	return hashKey("layout", sceneHash)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash, format string) string {
	return hashKey("artifact", layoutHash, format)
}
