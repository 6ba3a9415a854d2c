package module

import (
	catalogdom "davenport/internal/services/api/catalog/domain"
)

// Ports bundles what the catalog module offers to other modules
type Ports struct {
	Catalog catalogdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
