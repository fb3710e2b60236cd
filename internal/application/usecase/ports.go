package usecase

import (
	"context"

	"github.com/jhoicas/bodega-sync-api/internal/application/projection"
)

// Projector ejecuta una pasada completa de proyección (ver projection.Engine).
type Projector interface {
	Run(ctx context.Context) (projection.Result, error)
}
