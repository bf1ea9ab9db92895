package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form messages.
type ContactService interface {
	// Submit validates and stores a new message. Status is forced to
	// "unread" regardless of input; ID and timestamps are populated on
	// success. Fails with ErrValidation on missing fields or a malformed
	// email address.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns one page of messages matching opts plus the pagination
	// window. Page and limit fall back to 1 and 10.
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error)

	// GetByID returns one message, or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Contact, error)

	// UpdateStatus sets the triage status. Fails with ErrValidation when
	// status is not one of unread/read/replied, repository.ErrNotFound
	// when the id is unknown. Setting the current status again is a no-op
	// success.
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)

	// Delete removes one message, or returns repository.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts; "recent" covers the last seven days.
	Stats(ctx context.Context) (*model.ContactStats, error)
}
