package usecase

import (
	"context"
	"strings"
	"sync"

	"webcarros/internal/domain/entity"
	"webcarros/internal/domain/repository"
	"webcarros/internal/domain/service"
	"webcarros/pkg/errors"
	"webcarros/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	assetStore  service.AssetStore
}

func NewListingUseCase(listingRepo repository.ListingRepository, assetStore service.AssetStore) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		assetStore:  assetStore,
	}
}

// AssetRemovalFailure records one asset that survived a cascading delete.
type AssetRemovalFailure struct {
	AssetID string `json:"asset_id"`
	Reason  string `json:"reason"`
}

// DeleteReport is the outcome of a cascading delete. The operation as a whole
// succeeded the moment the document was gone; FailedAssets lists orphaned
// blobs left behind.
type DeleteReport struct {
	ListingID     string                `json:"listing_id"`
	RemovedAssets []string              `json:"removed_assets"`
	FailedAssets  []AssetRemovalFailure `json:"failed_assets,omitempty"`
}

func (uc *ListingUseCase) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.ListAll(ctx)
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

// SearchListings finds listings whose name starts with the given text,
// case-insensitively. Stored names are uppercase, so the prefix is uppercased
// here before the range query. A blank query is the full browse set.
func (uc *ListingUseCase) SearchListings(ctx context.Context, query string) ([]*entity.Listing, error) {
	prefix := strings.ToUpper(strings.TrimSpace(query))
	if prefix == "" {
		return uc.listingRepo.ListAll(ctx)
	}
	return uc.listingRepo.SearchByNamePrefix(ctx, prefix)
}

func (uc *ListingUseCase) ListMyListings(ctx context.Context, ident entity.Identity) ([]*entity.Listing, error) {
	if !ident.Authenticated {
		return nil, errors.Unauthorized("Sign in to view your listings", nil)
	}
	return uc.listingRepo.ListByOwner(ctx, ident.UID)
}

// DeleteListing removes a listing and its assets as one best-effort
// operation. The document goes first: if that fails the whole delete fails
// and nothing else is attempted. Once the document is gone the operation has
// succeeded; asset removals run concurrently and their failures are demoted
// to warnings, since an orphaned blob is preferable to a listing that
// advertises missing images.
func (uc *ListingUseCase) DeleteListing(ctx context.Context, ident entity.Identity, id string) (*DeleteReport, error) {
	if !ident.Authenticated {
		return nil, errors.Unauthorized("Sign in to delete a listing", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != ident.UID {
		return nil, errors.Forbidden("You don't have permission to delete this listing", nil)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	report := &DeleteReport{ListingID: id}

	results := make([]error, len(listing.Images))
	var wg sync.WaitGroup
	for i, img := range listing.Images {
		wg.Add(1)
		go func(i int, img entity.AssetRef) {
			defer wg.Done()
			results[i] = uc.assetStore.Remove(ctx, img)
		}(i, img)
	}
	wg.Wait()

	for i, img := range listing.Images {
		err := results[i]
		if err == nil || errors.Is(err, errors.CodeNotFound) {
			report.RemovedAssets = append(report.RemovedAssets, img.AssetID)
			continue
		}
		logger.LogAssetRemovalError(id, img.AssetID, err)
		report.FailedAssets = append(report.FailedAssets, AssetRemovalFailure{
			AssetID: img.AssetID,
			Reason:  err.Error(),
		})
	}

	return report, nil
}
