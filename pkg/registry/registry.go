package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/classfmt/go-sdk/pkg/core"
)

// NullName resolves to an absent class.
const NullName = "null"

// Registry manages the collection of named classes.
// It provides thread-safe registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]core.Class
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]core.Class),
	}
}

// Register binds name to class.
// It returns an error if the name is invalid, the class is nil, or the name is
// already taken.
func (r *Registry) Register(name string, class core.Class) error {
	if err := validateName(name); err != nil {
		return err
	}
	if class == nil {
		return core.NewArgumentError("Register", "class", "must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; exists {
		return &LookupError{Name: name, Err: ErrAlreadyRegistered}
	}
	r.classes[name] = class
	return nil
}

// RegisterAlias binds alias to the class target resolves to. The target may
// use the same "*" and "[]" prefixes as Resolve.
func (r *Registry) RegisterAlias(alias, target string) error {
	target = strings.TrimSpace(target)
	if target == NullName {
		return &LookupError{Name: target, Err: ErrInvalidName}
	}
	class, err := r.resolve(target)
	if err != nil {
		return err
	}
	return r.Register(alias, class)
}

// RegisterAliases registers every alias in aliases. Targets may name other
// aliases of the same set; entries are retried in sorted order until a pass
// registers nothing, and the remaining failures are returned together.
func (r *Registry) RegisterAliases(aliases map[string]string) error {
	pending := make([]string, 0, len(aliases))
	for alias := range aliases {
		pending = append(pending, alias)
	}
	sort.Strings(pending)

	for len(pending) > 0 {
		var (
			next []string
			errs []error
		)
		for _, alias := range pending {
			err := r.RegisterAlias(alias, aliases[alias])
			switch {
			case err == nil:
			case errors.Is(err, ErrTypeNotFound):
				next = append(next, alias)
				errs = append(errs, fmt.Errorf("register alias %q: %w", alias, err))
			default:
				return fmt.Errorf("register alias %q: %w", alias, err)
			}
		}
		if len(next) == len(pending) {
			return errors.Join(errs...)
		}
		pending = next
	}
	return nil
}

// Unregister removes name from the registry.
// It returns an error if the name is not registered.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; !exists {
		return &LookupError{Name: name, Err: ErrTypeNotFound}
	}
	delete(r.classes, name)
	return nil
}

// Lookup returns the class registered under name.
func (r *Registry) Lookup(name string) (core.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	class, exists := r.classes[name]
	if !exists {
		return nil, &LookupError{Name: name, Err: ErrTypeNotFound}
	}
	return class, nil
}

// Resolve turns each name into a class. NullName yields a nil entry, and
// names prefixed with "*" or "[]" resolve to pointer and slice classes of the
// remainder.
func (r *Registry) Resolve(names ...string) ([]core.Class, error) {
	if names == nil {
		return nil, nil
	}
	classes := make([]core.Class, len(names))
	for i, name := range names {
		class, err := r.resolve(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		classes[i] = class
	}
	return classes, nil
}

func (r *Registry) resolve(name string) (core.Class, error) {
	switch {
	case name == NullName:
		return nil, nil
	case strings.HasPrefix(name, "*"):
		elem, err := r.resolveElem(name, name[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(name, "[]"):
		elem, err := r.resolveElem(name, name[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	}
	return r.Lookup(name)
}

func (r *Registry) resolveElem(full, elem string) (core.Class, error) {
	if elem == NullName {
		return nil, &LookupError{Name: full, Err: ErrInvalidName}
	}
	class, err := r.resolve(elem)
	if err != nil {
		return nil, &LookupError{Name: full, Err: err}
	}
	return class, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Clear removes all registered names.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = make(map[string]core.Class)
}

func validateName(name string) error {
	switch {
	case name == "":
		return &LookupError{Name: name, Err: ErrInvalidName}
	case name == NullName:
		return &LookupError{Name: name, Err: ErrInvalidName}
	case strings.TrimSpace(name) != name:
		return &LookupError{Name: name, Err: ErrInvalidName}
	case strings.HasPrefix(name, "*"), strings.HasPrefix(name, "[]"):
		return &LookupError{Name: name, Err: ErrInvalidName}
	}
	return nil
}
