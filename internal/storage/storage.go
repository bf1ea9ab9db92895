// Package storage abstracts where uploaded images end up: the local
// filesystem served as static files, or a remote asset host reached over
// HTTP. One driver is selected per deployment.
package storage

import (
	"context"
	"fmt"
	"io"
)

// Object describes a stored image.
type Object struct {
	// URL is publicly resolvable.
	URL string
	// PublicID identifies the object at its host: the asset host's id for
	// the remote driver, the generated filename for the local one.
	PublicID string
}

// Storage saves and deletes uploaded images.
type Storage interface {
	// Save stores the image under key and returns its public location.
	// key is a unique path such as "portfolio/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (*Object, error)

	// Delete removes the object with the given key. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, key string) error
}

// UpstreamError reports a failed transfer to the remote asset host,
// carrying the upstream HTTP status when one was received.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("storage: upstream status %d: %s", e.StatusCode, e.Message)
}
