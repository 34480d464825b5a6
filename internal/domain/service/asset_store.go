package service

import (
	"context"
	"io"

	"webcarros/internal/domain/entity"
)

// AssetStore is the blob-store collaborator. Upload either leaves a fully
// usable object behind (ref with a durable URL) or nothing at all; Remove is
// idempotent and reports an already-absent object as NotFound.
type AssetStore interface {
	Upload(ctx context.Context, ownerID string, payload io.Reader, mimeType string) (*entity.AssetRef, error)
	Remove(ctx context.Context, ref entity.AssetRef) error
	Close() error
}
