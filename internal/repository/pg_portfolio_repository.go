package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPortfolioRepository is the PostgreSQL implementation of
// PortfolioRepository. The document is stored as a single JSONB row;
// the primary key is constrained to TRUE so the database itself rejects
// a second row.
type PgPortfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPgPortfolioRepository creates a PgPortfolioRepository backed by the given pool.
func NewPgPortfolioRepository(pool *pgxpool.Pool) *PgPortfolioRepository {
	return &PgPortfolioRepository{pool: pool}
}

// Ensure PgPortfolioRepository implements PortfolioRepository at compile time.
var _ PortfolioRepository = (*PgPortfolioRepository)(nil)

func (r *PgPortfolioRepository) Get(ctx context.Context) (*model.Portfolio, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM portfolio WHERE singleton`,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var p model.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("portfolio: decode: %w", err)
	}
	return &p, nil
}

func (r *PgPortfolioRepository) Create(ctx context.Context, p *model.Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("portfolio: encode: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO portfolio (singleton, data) VALUES (TRUE, $1)`,
		data,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return err
}

func (r *PgPortfolioRepository) Update(ctx context.Context, p *model.Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("portfolio: encode: %w", err)
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE portfolio SET data = $1, updated_at = now() WHERE singleton`,
		data,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPortfolioRepository) Delete(ctx context.Context) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio WHERE singleton`)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
