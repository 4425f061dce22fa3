// Package builder models the ordered list of typed page components a staff
// member assembles for a settlement website, and the editing operations over
// it. Components live in the draft store only; they are never a backend
// resource of their own.
package builder

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Type identifies one kind of page section. The set is closed.
type Type string

const (
	TypeHeader   Type = "header"
	TypeHero     Type = "hero"
	TypeAbout    Type = "about"
	TypeServices Type = "services"
	TypeBlog     Type = "blog"
	TypeMap      Type = "map"
	TypeContact  Type = "contact"
	TypeFooter   Type = "footer"
)

// Types lists every valid component type in display order.
var Types = []Type{
	TypeHeader, TypeHero, TypeAbout, TypeServices,
	TypeBlog, TypeMap, TypeContact, TypeFooter,
}

// Valid reports whether t is a member of the closed type set.
func (t Type) Valid() bool {
	switch t {
	case TypeHeader, TypeHero, TypeAbout, TypeServices,
		TypeBlog, TypeMap, TypeContact, TypeFooter:
		return true
	}
	return false
}

// Mandatory reports whether a page must contain exactly one component of
// this type whenever it contains any component at all.
func (t Type) Mandatory() bool {
	return t == TypeHeader || t == TypeFooter
}

// Singleton reports whether at most one component of this type may exist on
// a page. Hero and services sections may repeat; everything else may not.
func (t Type) Singleton() bool {
	return t != TypeHero && t != TypeServices
}

// Alignment controls the text alignment class emitted for a section.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether a is one of the three known alignments.
func (a Alignment) Valid() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// Link is one navigation entry in a header payload.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Content is the per-type payload of a component. Each component type has
// exactly one variant carrying only the fields that type renders, so the
// render switch is exhaustive at compile time.
type Content interface {
	ComponentType() Type
}

// HeaderContent holds the page title. Navigation is derived from page
// composition at generation time, not authored, but explicit links are kept
// for drafts seeded before that behavior existed.
type HeaderContent struct {
	Title string `json:"title,omitempty"`
	Links []Link `json:"links,omitempty"`
}

// HeroContent distinguishes unset fields from explicitly empty ones: a nil
// pointer falls back to the default string, an empty string is kept verbatim.
type HeroContent struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
}

// SectionContent is the shared payload shape of about, services and contact
// sections: an optional title and an optional body paragraph.
type SectionContent struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"description,omitempty"`
}

// AboutContent is the payload of an about section.
type AboutContent struct{ SectionContent }

// ServicesContent is the payload of a services section.
type ServicesContent struct{ SectionContent }

// ContactContent is the payload of a contact section.
type ContactContent struct{ SectionContent }

// BlogContent holds the optional heading of the blog listing section. The
// posts themselves are fetched at runtime by the generated script.
type BlogContent struct {
	Title string `json:"title,omitempty"`
}

// MapContent holds the optional heading of the map section.
type MapContent struct {
	Title string `json:"title,omitempty"`
}

// FooterContent carries no fields; the footer line is derived from the
// settlement name and the current year.
type FooterContent struct{}

func (HeaderContent) ComponentType() Type   { return TypeHeader }
func (HeroContent) ComponentType() Type     { return TypeHero }
func (AboutContent) ComponentType() Type    { return TypeAbout }
func (ServicesContent) ComponentType() Type { return TypeServices }
func (BlogContent) ComponentType() Type     { return TypeBlog }
func (MapContent) ComponentType() Type      { return TypeMap }
func (ContactContent) ComponentType() Type  { return TypeContact }
func (FooterContent) ComponentType() Type   { return TypeFooter }

// emptyContent returns the zero payload variant for t.
func emptyContent(t Type) Content {
	switch t {
	case TypeHeader:
		return HeaderContent{}
	case TypeHero:
		return HeroContent{}
	case TypeAbout:
		return AboutContent{}
	case TypeServices:
		return ServicesContent{}
	case TypeBlog:
		return BlogContent{}
	case TypeMap:
		return MapContent{}
	case TypeContact:
		return ContactContent{}
	case TypeFooter:
		return FooterContent{}
	}
	return nil
}

// Component is one named section of a settlement page. Position is dense and
// zero-based across the list it belongs to.
type Component struct {
	ID        string
	Type      Type
	Content   Content
	Position  int
	Alignment Alignment
}

// componentJSON is the wire/storage envelope. Content is decoded into the
// variant selected by Type.
type componentJSON struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Content   json.RawMessage `json:"content"`
	Position  int             `json:"position"`
	Alignment Alignment       `json:"alignment"`
}

// MarshalJSON encodes the component with its payload inlined under "content".
func (c Component) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(c.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(componentJSON{
		ID:        c.ID,
		Type:      c.Type,
		Content:   content,
		Position:  c.Position,
		Alignment: c.Alignment,
	})
}

// UnmarshalJSON decodes the envelope and dispatches the payload to the
// variant named by the type tag. Unknown types are an error so corrupt
// drafts are detected instead of half-loaded.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw componentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("builder: unknown component type %q", raw.Type)
	}
	content := emptyContent(raw.Type)
	if len(raw.Content) > 0 {
		if err := unmarshalContent(raw.Type, raw.Content, &content); err != nil {
			return err
		}
	}
	alignment := raw.Alignment
	if !alignment.Valid() {
		alignment = AlignCenter
	}
	c.ID = raw.ID
	c.Type = raw.Type
	c.Content = content
	c.Position = raw.Position
	c.Alignment = alignment
	return nil
}

// DecodeContent decodes a raw JSON payload into the content variant for t.
// Used by edit endpoints that patch a component's content.
func DecodeContent(t Type, data []byte) (Content, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	content := emptyContent(t)
	if len(data) > 0 {
		if err := unmarshalContent(t, data, &content); err != nil {
			return nil, err
		}
	}
	return content, nil
}

func unmarshalContent(t Type, data []byte, out *Content) error {
	switch t {
	case TypeHeader:
		var v HeaderContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeHero:
		var v HeroContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeAbout:
		var v AboutContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeServices:
		var v ServicesContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeBlog:
		var v BlogContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeMap:
		var v MapContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeContact:
		var v ContactContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = v
	case TypeFooter:
		*out = FooterContent{}
	}
	return nil
}

func newComponent(t Type) Component {
	return Component{
		ID:        uuid.NewString(),
		Type:      t,
		Content:   emptyContent(t),
		Alignment: AlignCenter,
	}
}
