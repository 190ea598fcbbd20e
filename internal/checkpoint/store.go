// Package checkpoint records the prior disposition of named global settings
// before a demo overrides them, and puts everything back at session end.
// Demos hide status lines and flip display options for effect; none of that
// may leak past the session, even on abort.
package checkpoint

import "fmt"

// Settings is the global-setting surface the store checkpoints against.
// Lookup returns nil when the name is unbound, a pointer to the value
// otherwise (an empty string means bound-but-empty).
type Settings interface {
	Lookup(name string) (*string, error)
	Set(name, value string) error
	Unset(name string) error
}

type dispositionKind int

const (
	hadValue dispositionKind = iota
	wasBoundButEmpty
	wasUnbound
)

type disposition struct {
	kind  dispositionKind
	value string
}

// Pair is one (name, value) override.
type Pair struct {
	Name  string
	Value string
}

// Store remembers the pre-override disposition of each setting it touches.
// The first override of a name wins; later overrides of the same name in the
// same session do not re-checkpoint.
type Store struct {
	settings Settings
	saved    map[string]disposition
	order    []string
}

// New returns an empty store over the given settings surface.
func New(settings Settings) *Store {
	return &Store{
		settings: settings,
		saved:    make(map[string]disposition),
	}
}

// CheckpointAndSet records the current disposition of each name (first write
// only) and then applies the override, left to right. A lookup or set failure
// stops the sweep; dispositions recorded before the failure stay recorded so
// RestoreAll still undoes them.
func (s *Store) CheckpointAndSet(pairs ...Pair) error {
	for _, p := range pairs {
		if _, seen := s.saved[p.Name]; !seen {
			prev, err := s.settings.Lookup(p.Name)
			if err != nil {
				return fmt.Errorf("checkpoint %q: %w", p.Name, err)
			}
			d := disposition{kind: wasUnbound}
			if prev != nil {
				if *prev == "" {
					d = disposition{kind: wasBoundButEmpty}
				} else {
					d = disposition{kind: hadValue, value: *prev}
				}
			}
			s.saved[p.Name] = d
			s.order = append(s.order, p.Name)
		}
		if err := s.settings.Set(p.Name, p.Value); err != nil {
			return fmt.Errorf("set %q: %w", p.Name, err)
		}
	}
	return nil
}

// Len returns the number of checkpointed names.
func (s *Store) Len() int {
	return len(s.saved)
}

// RestoreAll puts every checkpointed name back to its pre-session
// disposition and clears the store. A second call on the drained store is a
// no-op. Restoration errors are collected but do not stop the sweep; every
// name gets its restore attempt before the store is cleared.
func (s *Store) RestoreAll() error {
	var firstErr error
	for _, name := range s.order {
		d := s.saved[name]
		var err error
		switch d.kind {
		case hadValue:
			err = s.settings.Set(name, d.value)
		case wasBoundButEmpty:
			err = s.settings.Set(name, "")
		case wasUnbound:
			err = s.settings.Unset(name)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("restore %q: %w", name, err)
		}
	}
	s.saved = make(map[string]disposition)
	s.order = nil
	return firstErr
}
