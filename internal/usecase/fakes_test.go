package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"webcarros/internal/domain/entity"
	"webcarros/pkg/errors"
)

// fakeAssetStore keeps uploaded payload paths in memory and mirrors the real
// client's contract: media-type check before any write, NotFound on removing
// an absent object.
type fakeAssetStore struct {
	mu          sync.Mutex
	objects     map[string]bool // storage path -> exists
	seq         int
	uploadErr   error
	removeErr   map[string]error // asset id -> forced failure
	removeCalls map[string]int
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{
		objects:     make(map[string]bool),
		removeErr:   make(map[string]error),
		removeCalls: make(map[string]int),
	}
}

func (s *fakeAssetStore) Upload(ctx context.Context, ownerID string, payload io.Reader, mimeType string) (*entity.AssetRef, error) {
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/png":
	default:
		return nil, errors.InvalidMediaType(mimeType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploadErr != nil {
		return nil, s.uploadErr
	}

	s.seq++
	ref := entity.AssetRef{
		AssetID: fmt.Sprintf("a%d", s.seq),
		OwnerID: ownerID,
	}
	ref.URL = "https://storage.example.com/" + ref.StoragePath()
	s.objects[ref.StoragePath()] = true

	return &ref, nil
}

func (s *fakeAssetStore) Remove(ctx context.Context, ref entity.AssetRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeCalls[ref.AssetID]++

	if err, ok := s.removeErr[ref.AssetID]; ok {
		return err
	}

	if !s.objects[ref.StoragePath()] {
		return errors.NotFound("Asset", nil)
	}

	delete(s.objects, ref.StoragePath())
	return nil
}

func (s *fakeAssetStore) Close() error { return nil }

func (s *fakeAssetStore) exists(ref entity.AssetRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[ref.StoragePath()]
}

// fakeListingRepository implements the repository contract over a map,
// including the EmptyImageSet and ownership preconditions of Create.
type fakeListingRepository struct {
	mu          sync.Mutex
	docs        map[string]*entity.Listing
	seq         int
	createErr   error
	createCalls int
	deleteErr   error
}

func newFakeListingRepository() *fakeListingRepository {
	return &fakeListingRepository{
		docs: make(map[string]*entity.Listing),
	}
}

func (r *fakeListingRepository) Create(ctx context.Context, listing *entity.Listing) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++

	if r.createErr != nil {
		return "", r.createErr
	}
	if len(listing.Images) == 0 {
		return "", errors.EmptyImageSet()
	}
	for _, img := range listing.Images {
		if img.OwnerID != listing.OwnerID {
			return "", errors.Forbidden("Listing images must belong to the listing owner", nil)
		}
	}

	r.seq++
	id := fmt.Sprintf("listing-%d", r.seq)
	listing.ID = id
	listing.CreatedAt = time.Now()

	stored := *listing
	stored.Images = append([]entity.AssetRef(nil), listing.Images...)
	r.docs[id] = &stored

	return id, nil
}

func (r *fakeListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *doc
	copied.Images = append([]entity.AssetRef(nil), doc.Images...)
	return &copied, nil
}

func (r *fakeListingRepository) ListAll(ctx context.Context) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings := []*entity.Listing{}
	for _, doc := range r.docs {
		copied := *doc
		listings = append(listings, &copied)
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}

func (r *fakeListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings := []*entity.Listing{}
	for _, doc := range r.docs {
		if doc.OwnerID == ownerID {
			copied := *doc
			listings = append(listings, &copied)
		}
	}
	return listings, nil
}

func (r *fakeListingRepository) SearchByNamePrefix(ctx context.Context, prefix string) ([]*entity.Listing, error) {
	if prefix == "" {
		return r.ListAll(ctx)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	listings := []*entity.Listing{}
	for _, doc := range r.docs {
		if strings.HasPrefix(doc.Name, prefix) {
			copied := *doc
			listings = append(listings, &copied)
		}
	}
	return listings, nil
}

func (r *fakeListingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.docs[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.docs, id)
	return nil
}
