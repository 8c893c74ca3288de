package command

import (
	"fmt"
	"sort"
	"strings"

	"marvin/internal/core/domain"
	"marvin/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Descriptor is the static metadata of one registered command. Descriptors
// are built once at startup and never mutated.
type Descriptor struct {
	Name      string
	Aliases   []string
	HandlerID string
	MinLevel  domain.Level
	Help      string
}

type Binding struct {
	Descriptor
	Handler port.Handler
}

// Registry maps command tokens and handler ids to their bindings. It is
// populated at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	byToken map[string]*Binding
	byID    map[string]*Binding
}

func NewRegistry() *Registry {
	return &Registry{
		byToken: make(map[string]*Binding),
		byID:    make(map[string]*Binding),
	}
}

// Register adds a command. Overlapping names or aliases across descriptors
// are a configuration error and must abort startup.
func (r *Registry) Register(d Descriptor, handler port.Handler) error {
	if d.Name == "" {
		return fmt.Errorf("command descriptor for handler %q has no name", d.HandlerID)
	}
	if d.HandlerID == "" {
		return fmt.Errorf("command %q has no handler id", d.Name)
	}
	if handler == nil {
		return fmt.Errorf("command %q registered without a handler", d.Name)
	}
	if _, ok := r.byID[d.HandlerID]; ok {
		return fmt.Errorf("handler id %q registered twice", d.HandlerID)
	}

	binding := &Binding{Descriptor: d, Handler: handler}

	tokens := append([]string{d.Name}, d.Aliases...)
	for _, token := range tokens {
		key := strings.ToLower(token)
		if existing, ok := r.byToken[key]; ok {
			return fmt.Errorf("token %q of command %q already registered by %q",
				token, d.Name, existing.Name)
		}
		r.byToken[key] = binding
	}
	r.byID[d.HandlerID] = binding

	log.Info().Str("command", d.Name).Str("handlerId", d.HandlerID).
		Strs("aliases", d.Aliases).Stringer("minLevel", d.MinLevel).
		Msg("adding command handler to registry")

	return nil
}

// Resolve matches a token against canonical names and aliases,
// case-insensitively and exactly.
func (r *Registry) Resolve(token string) (*Binding, bool) {
	binding, ok := r.byToken[strings.ToLower(token)]
	return binding, ok
}

// ByHandlerID looks a binding up by its stable handler id, used for replay
// and wait continuations.
func (r *Registry) ByHandlerID(id string) (*Binding, bool) {
	binding, ok := r.byID[id]
	return binding, ok
}

// List returns all descriptors sorted by name.
func (r *Registry) List() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.byID))
	for _, binding := range r.byID {
		descriptors = append(descriptors, binding.Descriptor)
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})

	return descriptors
}
