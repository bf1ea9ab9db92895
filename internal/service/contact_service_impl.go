package service

import (
	"context"
	"regexp"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	// recentWindow bounds the "recent" stats count.
	recentWindow = 7 * 24 * time.Hour
)

// emailPattern requires a local part, exactly one @, a domain, and at least
// one dot after the @, with no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit validates the message, forces status to "unread" and persists it.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	switch {
	case c.Name == "":
		return validationError("name is required")
	case c.Email == "":
		return validationError("email is required")
	case c.Subject == "":
		return validationError("subject is required")
	case c.Message == "":
		return validationError("message is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return validationError("invalid email format")
	}

	c.Status = model.StatusUnread
	return s.repo.Save(ctx, c)
}

// List normalizes paging parameters, fetches one page and computes the
// pagination window: totalPages = ceil(total/limit).
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
	if opts.Page < 1 {
		opts.Page = defaultPage
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Status != "" && !model.ValidStatus(opts.Status) {
		// Unknown status values filter nothing, matching the behavior of
		// the admin UI sending "all".
		opts.Status = ""
	}

	contacts, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	return &model.ContactPage{
		Contacts: contacts,
		Pagination: model.Pagination{
			CurrentPage:   opts.Page,
			TotalPages:    totalPages,
			TotalContacts: total,
			HasNextPage:   opts.Page < totalPages,
			HasPrevPage:   opts.Page > 1,
		},
	}, nil
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	if !model.ValidStatus(status) {
		return nil, validationError("invalid status value %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	recentSince := time.Now().UTC().Add(-recentWindow)
	return s.repo.Stats(ctx, recentSince)
}
