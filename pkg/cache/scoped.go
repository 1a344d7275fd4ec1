package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful behind the HTTP API where different users or contexts
// need separate cache namespaces.
//
// Example usage:
//
//	// User-specific keys for private scenes
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared scenes
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout result caching.
func (k *ScopedKeyer) LayoutKey(sceneHash string) string {
	return k.prefix + k.inner.LayoutKey(sceneHash)
}

// ArtifactKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, format)
}
