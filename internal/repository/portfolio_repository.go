package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// PortfolioRepository defines persistence for the singleton portfolio
// document. The schema enforces the single-row invariant; the repository
// surfaces violations as ErrAlreadyExists.
type PortfolioRepository interface {
	// Get returns the document, or ErrNotFound if none has been created yet.
	Get(ctx context.Context) (*model.Portfolio, error)

	// Create inserts the document. Returns ErrAlreadyExists if one is
	// already present.
	Create(ctx context.Context, p *model.Portfolio) error

	// Update replaces the stored document. Returns ErrNotFound if none
	// exists.
	Update(ctx context.Context, p *model.Portfolio) error

	// Delete removes the document. Returns ErrNotFound if none exists.
	Delete(ctx context.Context) error
}
