package entity

import (
	"fmt"
	"time"
)

// AssetRef points at one uploaded photo in the blob store. The asset id is
// generated client-side before the upload, so the storage path can always be
// rebuilt from (OwnerID, AssetID) without a reverse index.
type AssetRef struct {
	AssetID string `json:"asset_id" firestore:"name"`
	OwnerID string `json:"owner_id" firestore:"uid"`
	URL     string `json:"url" firestore:"url"`
}

// StoragePath is the deterministic blob-store location for this asset.
func (r AssetRef) StoragePath() string {
	return fmt.Sprintf("images/%s/%s", r.OwnerID, r.AssetID)
}

type Listing struct {
	ID          string     `json:"id" firestore:"-"`
	OwnerID     string     `json:"owner_id" firestore:"uidOwner"`
	Owner       string     `json:"owner" firestore:"owner"`
	Name        string     `json:"name" firestore:"name"`
	Model       string     `json:"model" firestore:"model"`
	Year        string     `json:"year" firestore:"year"`
	Km          string     `json:"km" firestore:"km"`
	Price       string     `json:"price" firestore:"price"`
	City        string     `json:"city" firestore:"city"`
	Whatsapp    string     `json:"whatsapp" firestore:"whatsapp"`
	Description string     `json:"description" firestore:"description"`
	CreatedAt   time.Time  `json:"created_at" firestore:"created"`
	Images      []AssetRef `json:"images" firestore:"images"`
}

// Thumbnail returns the representative image for list views: the first
// element of Images, which is upload order.
func (l *Listing) Thumbnail() (AssetRef, bool) {
	if len(l.Images) == 0 {
		return AssetRef{}, false
	}
	return l.Images[0], true
}
