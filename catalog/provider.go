package catalog

import "github.com/rynalabs/ryna/core"

// Provider supplies the current property list. Implementations must return
// a snapshot the caller may read for the duration of one request without
// further synchronization.
type Provider interface {
	Properties() []core.Property
}

// Static is a fixed in-memory Provider.
type Static struct {
	properties []core.Property
}

var _ Provider = (*Static)(nil)

// NewStatic creates a provider over a fixed property list.
func NewStatic(properties []core.Property) *Static {
	return &Static{properties: properties}
}

// Properties returns the property list.
func (s *Static) Properties() []core.Property {
	return s.properties
}
