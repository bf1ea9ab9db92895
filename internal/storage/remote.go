package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"
)

// RemoteStorage forwards images to an external asset host over HTTP and
// returns the URL the host assigns. Uses raw HTTP calls, no SDK.
type RemoteStorage struct {
	uploadURL string // host upload endpoint
	apiKey    string
	client    *http.Client
}

// NewRemoteStorage creates a RemoteStorage for the given upload endpoint.
func NewRemoteStorage(uploadURL, apiKey string) *RemoteStorage {
	return &RemoteStorage{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Storage = (*RemoteStorage)(nil)

// remoteUploadResponse is the asset host's answer to an upload.
type remoteUploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	Message   string `json:"message"`
}

// Save uploads the image as a multipart form in a single blocking round
// trip. No retry is performed; a failed transfer surfaces as UpstreamError.
func (s *RemoteStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (*Object, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, key))
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("storage: form: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("storage: buffer: %w", err)
	}
	if err := mw.WriteField("public_id", key); err != nil {
		return nil, fmt.Errorf("storage: form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("storage: form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed remoteUploadResponse
		_ = json.Unmarshal(respBody, &parsed)
		msg := parsed.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed remoteUploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "unparseable upload response"}
	}

	u := parsed.SecureURL
	if u == "" {
		u = parsed.URL
	}
	publicID := parsed.PublicID
	if publicID == "" {
		publicID = key
	}
	return &Object{URL: u, PublicID: publicID}, nil
}

// Delete asks the asset host to remove the object. Hosts answer 404 for
// already-deleted objects; that is treated as success.
func (s *RemoteStorage) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		s.uploadURL+"/"+url.PathEscape(key), nil)
	if err != nil {
		return err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &UpstreamError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusNotFound {
		return nil
	}
	return &UpstreamError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}
