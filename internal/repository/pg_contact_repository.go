package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, subject, message, status, created_at, updated_at`

// isInvalidID reports whether err is Postgres rejecting a malformed uuid.
// Callers treat such ids the same as ids that match no row.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// Save inserts a new contacts row and populates c.ID and timestamps from
// the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, subject, message, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Subject, c.Message, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// contactFilter builds the WHERE clause shared by List's page and count
// queries. Search matches case-insensitively as a substring against name,
// email, subject or message.
func contactFilter(opts model.ContactListOptions) (string, []any) {
	var conditions []string
	var args []any

	if status := strings.TrimSpace(opts.Status); status != "" {
		args = append(args, status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions,
			"(name ILIKE $"+n+" OR email ILIKE $"+n+" OR subject ILIKE $"+n+" OR message ILIKE $"+n+")")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike escapes LIKE metacharacters so a search term is always a
// literal substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// List returns one page of messages matching opts, newest first, plus the
// total number of matches.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error) {
	where, args := contactFilter(opts)

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM contacts `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (opts.Page - 1) * opts.Limit
	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, opts.Limit, offset)

	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts `+where+
			` ORDER BY created_at DESC LIMIT $`+limitArg+` OFFSET $`+offsetArg,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, total, rows.Err()
}

func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`UPDATE contacts SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id, status,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if isInvalidID(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns aggregate counts in a single scan using FILTER aggregates.
func (r *PgContactRepository) Stats(ctx context.Context, recentSince time.Time) (*model.ContactStats, error) {
	var s model.ContactStats
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE status = 'unread'),
		        count(*) FILTER (WHERE status = 'read'),
		        count(*) FILTER (WHERE status = 'replied'),
		        count(*) FILTER (WHERE created_at >= $1)
		 FROM contacts`,
		recentSince,
	).Scan(&s.Total, &s.Unread, &s.Read, &s.Replied, &s.Recent)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
