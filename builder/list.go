package builder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors returned by list operations. They are warnings for the
// caller to surface; the list is never modified when one is returned.
var (
	// ErrMandatoryComponent signals an attempt to delete or duplicate the
	// header or footer, which must exist exactly once on a non-empty page.
	ErrMandatoryComponent = errors.New("builder: header and footer are mandatory and unique")
	// ErrSingletonComponent signals an attempt to add a second component of
	// a type that may appear only once per page.
	ErrSingletonComponent = errors.New("builder: component type already present on the page")
	// ErrUnknownType signals a component type outside the closed set.
	ErrUnknownType = errors.New("builder: unknown component type")
	// ErrComponentNotFound signals an operation on a component id that is
	// not in the list.
	ErrComponentNotFound = errors.New("builder: component not found")
	// ErrContentMismatch signals a content payload whose variant does not
	// match the component's type.
	ErrContentMismatch = errors.New("builder: content payload does not match component type")
)

// List is the ordered, mutable component list for one settlement page.
// The zero value is an empty list.
type List struct {
	items []Component
}

// NewList builds a list from previously stored components, restoring dense
// zero-based positions in the stored order.
func NewList(components []Component) *List {
	l := &List{items: append([]Component(nil), components...)}
	l.renumber()
	return l
}

// Seed returns the starting composition for a new website: a header titled
// after the municipality and a hero section, plus the auto-inserted footer.
func Seed(settlementName string) *List {
	header := newComponent(TypeHeader)
	header.Content = HeaderContent{Title: "Primăria " + settlementName}
	hero := newComponent(TypeHero)
	l := &List{items: []Component{header, hero}}
	l.ensureMandatory()
	l.renumber()
	return l
}

// Components returns the components in position order. The slice is a copy;
// mutating it does not affect the list.
func (l *List) Components() []Component {
	return append([]Component(nil), l.items...)
}

// Len returns the number of components.
func (l *List) Len() int { return len(l.items) }

// Empty reports whether the list has no components.
func (l *List) Empty() bool { return len(l.items) == 0 }

// Has reports whether any component of type t is present.
func (l *List) Has(t Type) bool {
	for _, c := range l.items {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Add appends a new component of type t, enforcing the uniqueness rules:
// header and footer cannot be duplicated, and singleton section types are
// rejected when already present. Missing header/footer are auto-inserted so
// a non-empty page always has both. Returns the created component.
func (l *List) Add(t Type) (Component, error) {
	if !t.Valid() {
		return Component{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if l.Has(t) {
		if t.Mandatory() {
			return Component{}, ErrMandatoryComponent
		}
		if t.Singleton() {
			return Component{}, ErrSingletonComponent
		}
	}
	c := newComponent(t)
	switch t {
	case TypeHeader:
		l.items = append([]Component{c}, l.items...)
	case TypeFooter:
		l.items = append(l.items, c)
	default:
		// New sections go above the footer when one exists.
		if n := len(l.items); n > 0 && l.items[n-1].Type == TypeFooter {
			l.items = append(l.items[:n-1], c, l.items[n-1])
		} else {
			l.items = append(l.items, c)
		}
	}
	l.ensureMandatory()
	l.renumber()
	return c, nil
}

// Delete removes the component with the given id and renumbers positions.
// Header and footer deletion is rejected with ErrMandatoryComponent and the
// list is left unchanged.
func (l *List) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrComponentNotFound
	}
	if l.items[i].Type.Mandatory() {
		return ErrMandatoryComponent
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.renumber()
	return nil
}

// Direction is a one-step move, up toward position zero or down away from it.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Move swaps the component with its neighbor in the given direction. Moves
// past either end of the list are silent no-ops.
func (l *List) Move(id string, dir Direction) error {
	if dir != MoveUp && dir != MoveDown {
		return fmt.Errorf("builder: invalid move direction %q", dir)
	}
	i := l.index(id)
	if i < 0 {
		return ErrComponentNotFound
	}
	j := i + 1
	if dir == MoveUp {
		j = i - 1
	}
	if j < 0 || j >= len(l.items) {
		return nil
	}
	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.renumber()
	return nil
}

// SetAlignment updates the alignment of one component.
func (l *List) SetAlignment(id string, a Alignment) error {
	if !a.Valid() {
		return fmt.Errorf("builder: invalid alignment %q", a)
	}
	i := l.index(id)
	if i < 0 {
		return ErrComponentNotFound
	}
	l.items[i].Alignment = a
	return nil
}

// SetContent replaces the content payload of one component. The payload
// variant must match the component's type.
func (l *List) SetContent(id string, content Content) error {
	i := l.index(id)
	if i < 0 {
		return ErrComponentNotFound
	}
	if content == nil || content.ComponentType() != l.items[i].Type {
		return ErrContentMismatch
	}
	l.items[i].Content = content
	return nil
}

// Get returns the component with the given id.
func (l *List) Get(id string) (Component, bool) {
	i := l.index(id)
	if i < 0 {
		return Component{}, false
	}
	return l.items[i], true
}

func (l *List) index(id string) int {
	for i, c := range l.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ensureMandatory inserts a header at the front and a footer at the end when
// the list is non-empty and missing them.
func (l *List) ensureMandatory() {
	if len(l.items) == 0 {
		return
	}
	if !l.Has(TypeHeader) {
		l.items = append([]Component{newComponent(TypeHeader)}, l.items...)
	}
	if !l.Has(TypeFooter) {
		l.items = append(l.items, newComponent(TypeFooter))
	}
}

// renumber makes positions dense and zero-based in list order.
func (l *List) renumber() {
	for i := range l.items {
		l.items[i].Position = i
	}
}

// MarshalJSON encodes the list as a plain array of components.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON decodes an array of components and renumbers positions.
func (l *List) UnmarshalJSON(data []byte) error {
	var items []Component
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.items = items
	l.renumber()
	return nil
}
