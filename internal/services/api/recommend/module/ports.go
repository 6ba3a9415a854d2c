package module

import (
	"context"

	catalogdom "davenport/internal/services/api/catalog/domain"
	recdom "davenport/internal/services/api/recommend/domain"
	recsvc "davenport/internal/services/api/recommend/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSelectPort adapts the recommend service to the domain port interface
type adaptSelectPort struct{ svc recsvc.Service }

// Select implements the domain ServicePort interface
func (a adaptSelectPort) Select(ctx context.Context, in recdom.SelectInput) ([]catalogdom.Product, error) {
	return a.svc.Select(ctx, in)
}
