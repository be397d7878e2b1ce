package keymap

import "github.com/samber/lo"

// Resolver answers two questions: which action does this key trigger,
// and which keys trigger this action. The second direction feeds the
// help overlay and the hint sequence.
type Resolver struct {
	actionFor map[string]Action
	keysFor   map[Action][]string
}

// NewResolver indexes a binding set in both directions. When the same
// key appears in several bindings the last one wins, matching the
// order user overrides are appended in.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actionFor: make(map[string]Action),
		keysFor:   make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actionFor[key] = b.Action
		}
		r.keysFor[b.Action] = append(r.keysFor[b.Action], b.Keys...)
	}
	for action, keys := range r.keysFor {
		r.keysFor[action] = lo.Uniq(keys)
	}
	return r
}

// Resolve returns the action bound to key, or the zero Action.
func (r *Resolver) Resolve(key string) Action {
	return r.actionFor[key]
}

// KeysFor lists the keys bound to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keysFor[action]
}
