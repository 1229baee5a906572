package port

// KeyValueStore is the persistence abstraction for application state.
// Entries are read once at startup and rewritten wholesale on every
// mutation; there is no versioning or migration scheme.
type KeyValueStore interface {
	// Get returns the stored value, or an error wrapping domain.ErrNotFound
	// when the key has never been written.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}
