package primarium

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Limits on blog post fields, enforced before anything touches the store.
const (
	maxPostTitleLen       = 30
	maxPostDescriptionLen = 100
)

// Settlement is a municipality record and the owner of one generated public
// website. Active means a site has been published for it.
type Settlement struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Active bool    `json:"active"`
}

// Validate checks the settlement invariants: a name, a region label, and
// coordinates inside the valid degree ranges.
func (s Settlement) Validate() error {
	if s.Name == "" {
		return errors.New("a settlement must have a name")
	}
	if s.Region == "" {
		return errors.New("a settlement must have a region")
	}
	if s.Lat < -90 || s.Lat > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", s.Lat)
	}
	if s.Lng < -180 || s.Lng > 180 {
		return fmt.Errorf("longitude %v outside [-180, 180]", s.Lng)
	}
	return nil
}

// BlogPost belongs to exactly one settlement and is consumed read-only by
// the site generator. Content is authored rich text and may contain markup.
type BlogPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	SettlementID string    `json:"settlement"`
	Date         time.Time `json:"date"`
}

// Validate enforces the authoring limits: short title, short description,
// non-empty content, and a settlement back-reference.
func (p BlogPost) Validate() error {
	if p.Title == "" {
		return errors.New("a blog post must have a title")
	}
	if utf8.RuneCountInString(p.Title) > maxPostTitleLen {
		return fmt.Errorf("title longer than %d characters", maxPostTitleLen)
	}
	if p.Description == "" {
		return errors.New("a blog post must have a description")
	}
	if utf8.RuneCountInString(p.Description) > maxPostDescriptionLen {
		return fmt.Errorf("description longer than %d characters", maxPostDescriptionLen)
	}
	if p.Content == "" {
		return errors.New("a blog post must have content")
	}
	if p.SettlementID == "" {
		return errors.New("a blog post must belong to a settlement")
	}
	return nil
}

// Member is a team member profile attached to a settlement. PhotoPath is the
// uploaded, resized photo relative to the uploads directory, or empty.
type Member struct {
	ID           string `json:"id"`
	SettlementID string `json:"settlement"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position,omitempty"`
	Description  string `json:"description,omitempty"`
	PhotoPath    string `json:"photoPath,omitempty"`
}

// Validate checks the member invariants.
func (m Member) Validate() error {
	if m.FirstName == "" || m.LastName == "" {
		return errors.New("a member must have a first and last name")
	}
	if m.SettlementID == "" {
		return errors.New("a member must belong to a settlement")
	}
	return nil
}

// Coordinate is a named point of interest attached to a settlement.
type Coordinate struct {
	ID           string  `json:"id"`
	SettlementID string  `json:"settlement"`
	Name         string  `json:"name"`
	Lat          float64 `json:"latitude"`
	Lng          float64 `json:"longitude"`
}

// Validate checks the coordinate invariants.
func (c Coordinate) Validate() error {
	if c.Name == "" {
		return errors.New("a coordinate must have a name")
	}
	if c.SettlementID == "" {
		return errors.New("a coordinate must belong to a settlement")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %v outside [-180, 180]", c.Lng)
	}
	return nil
}

// PublishRecord is one audit entry of a publish attempt.
type PublishRecord struct {
	ID           int64     `json:"id"`
	SettlementID string    `json:"settlement"`
	Action       string    `json:"action"` // "create" or "update"
	Status       string    `json:"status"` // "success" or "error"
	Detail       string    `json:"detail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
