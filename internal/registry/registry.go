// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 2

var (
	// ErrUnknownGroup is the sentinel for lookups of unregistered group names.
	ErrUnknownGroup = errors.New("unknown command group")
	// ErrDuplicateGroup is returned by New when two descriptors share a name.
	ErrDuplicateGroup = errors.New("duplicate command group")
	// ErrEmptyGroupName is returned by New for a descriptor without a name.
	ErrEmptyGroupName = errors.New("command group name is empty")
)

type (
	// Registry is an ordered, immutable table of command groups.
	Registry struct {
		order  []Descriptor
		byName map[string]int
	}

	// UnknownGroupError is returned by Lookup for names not in the table.
	UnknownGroupError struct {
		Name        string
		Suggestions []string
	}
)

// New builds a registry from descs, keeping their order.
func New(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		order:  make([]Descriptor, 0, len(descs)),
		byName: make(map[string]int, len(descs)),
	}

	for _, d := range descs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("%w (locator %s)", ErrEmptyGroupName, d.Locator)
		}
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGroup, d.Name)
		}
		r.byName[d.Name] = len(r.order)
		r.order = append(r.order, d)
	}

	return r, nil
}

// MustNew is like New but panics on error. Use it for static tables.
func MustNew(descs ...Descriptor) *Registry {
	r, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	idx, ok := r.byName[name]
	if !ok {
		return Descriptor{}, &UnknownGroupError{Name: name, Suggestions: r.suggest(name)}
	}
	return r.order[idx], nil
}

// Enumerate returns all descriptors in registration order. It does not
// touch any group implementation.
func (r *Registry) Enumerate() []Descriptor {
	return slices.Clone(r.order)
}

// Names returns the group names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, d := range r.order {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered groups.
func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) suggest(name string) []string {
	if name == "" {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	var found []candidate
	lower := strings.ToLower(name)
	for _, d := range r.order {
		dist := editDistance(lower, d.Name)
		if dist <= maxSuggestionDistance || strings.HasPrefix(d.Name, lower) {
			found = append(found, candidate{name: d.Name, dist: dist})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.name
	}
	return out
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Error implements the error interface.
func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown command group %q", e.Name)
}

// Unwrap returns ErrUnknownGroup for errors.Is() compatibility.
func (e *UnknownGroupError) Unwrap() error { return ErrUnknownGroup }
