package usecase

import (
	"context"
	"io"
	"strings"
	"sync"

	"webcarros/internal/domain/entity"
	"webcarros/internal/domain/repository"
	"webcarros/internal/domain/service"
	"webcarros/pkg/errors"
	"webcarros/pkg/logger"
)

// DraftUseCase owns the authoring session: images a seller has already
// uploaded plus the pending form fields, before a listing is committed.
// One session per owner; the session survives failed commits so uploads are
// never paid for twice.
type DraftUseCase struct {
	assetStore  service.AssetStore
	listingRepo repository.ListingRepository

	mu       sync.Mutex
	sessions map[string]*draftSession
}

type draftSession struct {
	mu     sync.Mutex
	images []entity.AssetRef
}

func NewDraftUseCase(assetStore service.AssetStore, listingRepo repository.ListingRepository) *DraftUseCase {
	return &DraftUseCase{
		assetStore:  assetStore,
		listingRepo: listingRepo,
		sessions:    make(map[string]*draftSession),
	}
}

type CommitListingInput struct {
	Name        string `json:"name"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Km          string `json:"km"`
	Price       string `json:"price"`
	City        string `json:"city"`
	Whatsapp    string `json:"whatsapp"`
	Description string `json:"description"`
}

func (uc *DraftUseCase) session(ownerID string) *draftSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[ownerID]
	if !ok {
		s = &draftSession{}
		uc.sessions[ownerID] = s
	}
	return s
}

// AddImage uploads one image and appends its ref to the session. Uploads may
// run concurrently; the resulting order is completion order, which is fine
// since display order is only fixed at commit.
func (uc *DraftUseCase) AddImage(ctx context.Context, ident entity.Identity, payload io.Reader, mimeType string) (*entity.AssetRef, error) {
	if !ident.Authenticated {
		return nil, errors.Unauthorized("Sign in to upload images", nil)
	}

	ref, err := uc.assetStore.Upload(ctx, ident.UID, payload, mimeType)
	if err != nil {
		return nil, err
	}

	s := uc.session(ident.UID)
	s.mu.Lock()
	s.images = append(s.images, *ref)
	s.mu.Unlock()

	return ref, nil
}

// RemoveImage deletes the asset and drops its ref from the session. An asset
// that is already gone from the store still leaves the session; any other
// failure keeps the ref around so the user can retry.
func (uc *DraftUseCase) RemoveImage(ctx context.Context, ident entity.Identity, assetID string) error {
	if !ident.Authenticated {
		return errors.Unauthorized("Sign in to manage images", nil)
	}

	s := uc.session(ident.UID)

	s.mu.Lock()
	idx := -1
	for i, img := range s.images {
		if img.AssetID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return errors.NotFound("Image", nil)
	}
	ref := s.images[idx]
	s.mu.Unlock()

	if err := uc.assetStore.Remove(ctx, ref); err != nil {
		if !errors.Is(err, errors.CodeNotFound) {
			return err
		}
		logger.Warn("Image %s was already absent from storage", ref.StoragePath())
	}

	s.mu.Lock()
	for i, img := range s.images {
		if img.AssetID == assetID {
			s.images = append(s.images[:i], s.images[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

// Images returns a snapshot of the session's uploaded refs, in upload order.
func (uc *DraftUseCase) Images(ident entity.Identity) []entity.AssetRef {
	s := uc.session(ident.UID)

	s.mu.Lock()
	defer s.mu.Unlock()

	images := make([]entity.AssetRef, len(s.images))
	copy(images, s.images)
	return images
}

// Commit publishes the draft as a listing. The name is normalized to
// uppercase so prefix search is case-insensitive. On repository failure the
// session is left intact; already-uploaded images are not rolled back.
func (uc *DraftUseCase) Commit(ctx context.Context, ident entity.Identity, input CommitListingInput) (*entity.Listing, error) {
	if !ident.Authenticated {
		return nil, errors.Unauthorized("Sign in to publish a listing", nil)
	}

	s := uc.session(ident.UID)

	s.mu.Lock()
	images := make([]entity.AssetRef, len(s.images))
	copy(images, s.images)
	s.mu.Unlock()

	if len(images) == 0 {
		return nil, errors.EmptyImageSet()
	}

	listing := &entity.Listing{
		OwnerID:     ident.UID,
		Owner:       ident.DisplayName,
		Name:        strings.ToUpper(input.Name),
		Model:       input.Model,
		Year:        input.Year,
		Km:          input.Km,
		Price:       input.Price,
		City:        input.City,
		Whatsapp:    input.Whatsapp,
		Description: input.Description,
		Images:      images,
	}

	id, err := uc.listingRepo.Create(ctx, listing)
	if err != nil {
		return nil, err
	}
	listing.ID = id

	s.mu.Lock()
	s.images = nil
	s.mu.Unlock()

	return listing, nil
}
