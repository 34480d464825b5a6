package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"webcarros/internal/domain/entity"
	"webcarros/internal/domain/service"
	"webcarros/pkg/errors"
	"webcarros/pkg/logger"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName string, credentialsPath string) (service.AssetStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("Failed to set CORS configuration: %v", err)
	}

	return storageClient, nil
}

func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	corsConfig := storage.CORS{
		MaxAge:          3600, // 1 hour
		Methods:         []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		Origins:         []string{"*"}, // Replace with your domains in production
		ResponseHeaders: []string{"Content-Type", "x-goog-resumable"},
	}

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}

	if len(bucketAttrs.CORS) == 0 {
		bucketUpdate := storage.BucketAttrsToUpdate{
			CORS: []storage.CORS{corsConfig},
		}

		if _, err := bucket.Update(ctx, bucketUpdate); err != nil {
			return fmt.Errorf("failed to update bucket CORS: %v", err)
		}
	}

	return nil
}

func isAcceptedImageType(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// Upload writes the payload under images/{ownerID}/{assetID} and resolves a
// durable fetch URL. It never partially succeeds: if the write fails after the
// object may exist, the object is deleted best-effort before returning.
func (c *CloudStorageClient) Upload(ctx context.Context, ownerID string, payload io.Reader, mimeType string) (*entity.AssetRef, error) {
	if !isAcceptedImageType(mimeType) {
		return nil, errors.InvalidMediaType(mimeType)
	}

	ref := entity.AssetRef{
		AssetID: uuid.New().String(),
		OwnerID: ownerID,
	}

	obj := c.client.Bucket(c.bucketName).Object(ref.StoragePath())
	wc := obj.NewWriter(ctx)
	wc.ContentType = mimeType
	wc.CacheControl = "public, max-age=86400" // 1 day caching

	if _, err := io.Copy(wc, payload); err != nil {
		wc.Close()
		c.discard(ctx, obj)
		return nil, errors.RemoteUnavailable("Failed to write image to storage", err)
	}

	if err := wc.Close(); err != nil {
		c.discard(ctx, obj)
		return nil, errors.RemoteUnavailable("Failed to finalize image upload", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		c.discard(ctx, obj)
		return nil, errors.RemoteUnavailable("Failed to publish uploaded image", err)
	}

	ref.URL = fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, ref.StoragePath())

	return &ref, nil
}

// Remove deletes the object at the ref's storage path. An already-absent
// object is reported as NotFound; callers treat that as success-equivalent.
func (c *CloudStorageClient) Remove(ctx context.Context, ref entity.AssetRef) error {
	obj := c.client.Bucket(c.bucketName).Object(ref.StoragePath())

	if err := obj.Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return errors.NotFound("Asset", err)
		}
		return errors.RemoteUnavailable("Failed to delete asset", err)
	}

	return nil
}

func (c *CloudStorageClient) discard(ctx context.Context, obj *storage.ObjectHandle) {
	if err := obj.Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		logger.Warn("Failed to clean up partial upload %s: %v", obj.ObjectName(), err)
	}
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
