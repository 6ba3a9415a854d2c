package module

import (
	ordersdom "davenport/internal/services/api/orders/domain"
)

// Ports bundles what the orders module offers to other modules
type Ports struct {
	Orders ordersdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
