package cache

// ScopedKeyer prefixes every key produced by another Keyer, giving each
// scope (an API tenant, a test) its own namespace in a shared backend.
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements [Keyer].
func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

// FrameKey implements [Keyer].
func (k *ScopedKeyer) FrameKey(docHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(docHash, opts)
}
