package module

import (
	paydom "davenport/internal/services/api/payments/domain"
)

// Ports bundles what the payments module offers to other modules
type Ports struct {
	Payments paydom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
