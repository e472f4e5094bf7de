package service

import "context"

// ImageStorage is the binary upload collaborator. Uploads happen before a
// registration step's transaction begins, so a failed upload never touches
// persisted state. Items referencing an image carry the returned URL string;
// absence is valid.
type ImageStorage interface {
	// Store writes the bytes and returns a public URL for them.
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}
