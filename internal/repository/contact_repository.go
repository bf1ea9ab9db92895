package repository

import (
	"context"
	"time"

	"github.com/devfolio/backend/internal/model"
)

// ContactRepository defines persistence for contact form messages.
type ContactRepository interface {
	// Save inserts a new message. ID and timestamps are populated by the
	// implementation.
	Save(ctx context.Context, c *model.Contact) error

	// GetByID returns the message with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Contact, error)

	// List returns one page of messages matching opts, newest first, plus
	// the total number of matches across all pages.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int, error)

	// UpdateStatus sets the triage status of the message with the given id
	// and returns the updated record, or ErrNotFound.
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)

	// Delete removes the message with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts. recentSince bounds the "recent"
	// count: messages created at or after it.
	Stats(ctx context.Context, recentSince time.Time) (*model.ContactStats, error)
}
