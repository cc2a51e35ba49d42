// Package mock provides function-field mocks for domain interfaces.
package mock

import tothepoint "github.com/drivernf/to-the-point"

var _ tothepoint.Locator = (*Locator)(nil)

// Locator is a mock implementation of tothepoint.Locator.
type Locator struct {
	LocateFn func(root tothepoint.Node, records []tothepoint.MetadataRecord, title string) (*tothepoint.Location, error)
}

func (l *Locator) Locate(root tothepoint.Node, records []tothepoint.MetadataRecord, title string) (*tothepoint.Location, error) {
	return l.LocateFn(root, records, title)
}
