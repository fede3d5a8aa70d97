package keymap

type slot struct {
	context, key string
}

// Resolver looks keys up in three layers: the focused context, then
// playback, then global. The first layer that binds the key wins.
type Resolver struct {
	bound map[slot]Action
}

func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bound: make(map[slot]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bound[slot{b.Context, key}] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key in context, or "" when nothing
// is. While typing, only the context's own bindings and a few control keys
// reach the outer layers so text entry gets every printable key.
func (r *Resolver) Resolve(context, key string, typing bool) Action {
	if a, ok := r.bound[slot{context, key}]; ok {
		return a
	}
	if typing {
		if !escapes(key) {
			return ""
		}
		return r.bound[slot{ContextGlobal, key}]
	}
	if a, ok := r.bound[slot{ContextPlayback, key}]; ok {
		return a
	}
	return r.bound[slot{ContextGlobal, key}]
}

func escapes(key string) bool {
	switch key {
	case "esc", "tab", "shift+tab", "ctrl+c":
		return true
	}
	return false
}
