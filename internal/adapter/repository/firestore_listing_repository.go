package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"webcarros/internal/domain/entity"
	"webcarros/internal/domain/repository"
	"webcarros/pkg/errors"
)

const listingCollection = "cars"

// highSentinel sorts after every string sharing a given prefix, which turns a
// prefix match into the half-open range [prefix, prefix+highSentinel).
const highSentinel = "\uf8ff"

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) (string, error) {
	if len(listing.Images) == 0 {
		return "", errors.EmptyImageSet()
	}

	// Authorization check, not an integrity check: the caller's asset refs
	// must belong to the listing owner.
	for _, img := range listing.Images {
		if img.OwnerID != listing.OwnerID {
			return "", errors.Forbidden("Listing images must belong to the listing owner", nil)
		}
	}

	doc := r.client.Collection(listingCollection).NewDoc()
	listing.ID = doc.ID
	listing.CreatedAt = time.Now()

	if _, err := doc.Set(ctx, listing); err != nil {
		return "", errors.RemoteUnavailable("Failed to create listing", err)
	}

	return doc.ID, nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection(listingCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.RemoteUnavailable("Failed to get listing", err)
	}

	return docToListing(doc)
}

func (r *firestoreListingRepository) ListAll(ctx context.Context) ([]*entity.Listing, error) {
	query := r.client.Collection(listingCollection).
		OrderBy("created", firestore.Desc)

	return r.queryListings(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	query := r.client.Collection(listingCollection).
		Where("uidOwner", "==", ownerID)

	return r.queryListings(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) SearchByNamePrefix(ctx context.Context, prefix string) ([]*entity.Listing, error) {
	if prefix == "" {
		return r.ListAll(ctx)
	}

	query := r.client.Collection(listingCollection).
		Where("name", ">=", prefix).
		Where("name", "<", prefix+highSentinel)

	return r.queryListings(ctx, query.Documents(ctx))
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(listingCollection).Doc(id)

	// Firestore deletes are no-ops on missing docs, so probe first to honor
	// the NotFound contract.
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Listing", err)
		}
		return errors.RemoteUnavailable("Failed to get listing", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.RemoteUnavailable("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) queryListings(ctx context.Context, iter *firestore.DocumentIterator) ([]*entity.Listing, error) {
	listings := []*entity.Listing{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.RemoteUnavailable("Failed to iterate listings", err)
		}

		listing, err := docToListing(doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func docToListing(doc *firestore.DocumentSnapshot) (*entity.Listing, error) {
	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	listing.ID = doc.Ref.ID
	return &listing, nil
}
