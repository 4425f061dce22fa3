// Package views holds the handwritten templ components of the admin
// interface. Components write pre-escaped HTML straight to the response.
package views

// SettlementItem is the settlement projection admin pages render.
type SettlementItem struct {
	ID     string
	Name   string
	Region string
	Active bool
}
