package domain

// ByteCache holds fetched payloads keyed by URL (memory, optionally BoltDB).
type ByteCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
	Close() error
}

// BuildProgress reports progress of the startup catalog build.
type BuildProgress struct {
	Index int // zero-based index of the node just built
	Total int
	Title string
	Items int
	State NodeState
	Done  bool
}

// BuildObserver receives progress updates while the catalog is built.
type BuildObserver interface {
	OnProgress(progress BuildProgress)
}

// NoOpObserver discards progress updates (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnProgress(BuildProgress) {}
