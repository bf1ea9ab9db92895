package model

import "time"

// Contact message triage states.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidStatus reports whether s is one of the three triage states.
func ValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead || s == StatusReplied
}

// Contact represents a message submitted via the public contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "unread" | "read" | "replied"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages.
type ContactListOptions struct {
	// Page is 1-based. Values below 1 are treated as 1.
	Page int
	// Limit is the page size. Values below 1 fall back to the default.
	Limit int
	// Status restricts to an exact triage state when set. Empty means all.
	Status string
	// Search matches case-insensitively as a substring against any of
	// name, email, subject or message.
	Search string
}

// Pagination describes the page window returned alongside a contact list.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalContacts int  `json:"totalContacts"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

// ContactPage is one page of contact messages plus its pagination window.
type ContactPage struct {
	Contacts   []*Contact `json:"contacts"`
	Pagination Pagination `json:"pagination"`
}

// ContactStats holds aggregate counts for the admin dashboard. Recent counts
// messages created within the last seven days.
type ContactStats struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
	Recent  int `json:"recent"`
}
