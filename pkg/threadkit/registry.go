package threadkit

import "sync"

// Registry tracks every live Thread built against it, in registration
// order. It holds non-owning back-references only: membership says nothing
// about lifetime, and closing a thread removes it without the registry ever
// managing the thread's resources.
//
// All access (insertion, removal, and the reverse-lookup scan) runs under
// one exclusive mutex. There is no reader/writer split: the registry is
// bounded by the number of concurrently live threads and is consulted far
// less often than work routines run, so a single lock keeps the concurrency
// story trivial.
type Registry struct {
	mu      sync.Mutex
	entries []*Thread
}

// NewRegistry creates an empty registry. Tests and embedders that want
// isolation from the process-wide default can pass their own instance to
// New via WithRegistry.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry is the process-wide registry used when no explicit one is
// injected.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// register inserts a back-reference to t. Called exactly once, during New.
func (r *Registry) register(t *Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, t)
}

// unregister removes t by identity. Called during Close; removing a thread
// that is not present is a silent no-op.
func (r *Registry) unregister(t *Thread) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, entry := range r.entries {
		if entry == t {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// LookupCurrent returns the Thread whose spawned goroutine is the caller,
// or false when the calling context was not spawned through a registered
// Thread: the process's main goroutine, a plain go statement, or a thread
// registered elsewhere.
//
// Threads that are constructed but not yet started are present in the
// registry with no spawn identity, so they correctly never match. The scan
// runs under the registry lock and reflects a consistent snapshot at
// lock-acquisition time.
func (r *Registry) LookupCurrent() (*Thread, bool) {
	id := callerID()
	if id == 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.entries {
		if t.spawnID.Load() == id {
			return t, true
		}
	}
	return nil, false
}

// Len returns the number of live registered threads.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot returns the registered threads in registration order. The
// returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Snapshot() []*Thread {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Thread, len(r.entries))
	copy(out, r.entries)
	return out
}

// Current returns the Thread that spawned the calling goroutine, looked up
// in the process-wide default registry. See Registry.LookupCurrent.
func Current() (*Thread, bool) {
	return defaultRegistry.LookupCurrent()
}
