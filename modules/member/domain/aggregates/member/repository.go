package member

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Member, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Member, error)
	// List returns every member; the import pipeline snapshots it once at run
	// start and never re-reads during a run.
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, m Member) (Member, error)
	Update(ctx context.Context, m Member) (Member, error)
}
