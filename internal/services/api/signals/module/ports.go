package module

import (
	signalsdom "davenport/internal/services/api/signals/domain"
)

// Ports bundles what the signals module offers to other modules
type Ports struct {
	Signals signalsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
