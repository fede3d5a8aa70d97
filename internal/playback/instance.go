package playback

import "sync"

// Instance holds the process-wide coordinator. Get constructs it at most
// once; concurrent callers wait for the first construction, and a failed
// construction may be retried.
type Instance struct {
	mu  sync.Mutex
	svc Service
}

// Get returns the coordinator, calling build if none was constructed yet.
func (i *Instance) Get(build func() (Service, error)) (Service, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.svc != nil {
		return i.svc, nil
	}
	svc, err := build()
	if err != nil {
		return nil, err
	}
	i.svc = svc
	return svc, nil
}

// Current returns the coordinator if constructed, or nil.
func (i *Instance) Current() Service {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.svc
}
