package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webcarros/internal/adapter/api"
	"webcarros/internal/domain/entity"
	"webcarros/internal/usecase"
	"webcarros/pkg/errors"

	"github.com/labstack/echo/v4"
)

type stubAssetStore struct{}

func (stubAssetStore) Upload(ctx context.Context, ownerID string, payload io.Reader, mimeType string) (*entity.AssetRef, error) {
	return &entity.AssetRef{AssetID: "a1", OwnerID: ownerID, URL: "https://storage.example.com/images/" + ownerID + "/a1"}, nil
}
func (stubAssetStore) Remove(ctx context.Context, ref entity.AssetRef) error { return nil }
func (stubAssetStore) Close() error                                          { return nil }

type stubListingRepository struct {
	created *entity.Listing
}

func (r *stubListingRepository) Create(ctx context.Context, listing *entity.Listing) (string, error) {
	if len(listing.Images) == 0 {
		return "", errors.EmptyImageSet()
	}
	listing.ID = "listing-1"
	r.created = listing
	return listing.ID, nil
}
func (r *stubListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	return nil, errors.NotFound("Listing", nil)
}
func (r *stubListingRepository) ListAll(ctx context.Context) ([]*entity.Listing, error) {
	return []*entity.Listing{}, nil
}
func (r *stubListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	return []*entity.Listing{}, nil
}
func (r *stubListingRepository) SearchByNamePrefix(ctx context.Context, prefix string) ([]*entity.Listing, error) {
	return []*entity.Listing{}, nil
}
func (r *stubListingRepository) Delete(ctx context.Context, id string) error { return nil }

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", entity.Identity{UID: "user-1", DisplayName: "Maria", Authenticated: true})
	c.Set("uid", "user-1")
	return c, rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	if assert.NoError(t, HealthCheck(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestCreateListingValidatesWhatsapp(t *testing.T) {
	h := NewDraftHandler(usecase.NewDraftUseCase(stubAssetStore{}, &stubListingRepository{}))

	body := `{"name":"Onix","model":"1.0","year":"2016","km":"23900","price":"45000","city":"SP","whatsapp":"not-a-number","description":"ok"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/my-listings", body)

	require.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCreateListingWithEmptyDraftReturnsBadRequest(t *testing.T) {
	h := NewDraftHandler(usecase.NewDraftUseCase(stubAssetStore{}, &stubListingRepository{}))

	body := `{"name":"Onix","model":"1.0","year":"2016","km":"23900","price":"45000","city":"SP","whatsapp":"11987654321","description":"ok"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/my-listings", body)

	require.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errors.CodeEmptyImageSet)
}

func TestCreateListingPublishesDraft(t *testing.T) {
	repo := &stubListingRepository{}
	uc := usecase.NewDraftUseCase(stubAssetStore{}, repo)
	h := NewDraftHandler(uc)

	ident := entity.Identity{UID: "user-1", DisplayName: "Maria", Authenticated: true}
	_, err := uc.AddImage(context.Background(), ident, strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)

	body := `{"name":"onix 1.0","model":"1.0","year":"2016","km":"23900","price":"45000","city":"SP","whatsapp":"11987654321","description":"ok"}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/my-listings", body)

	require.NoError(t, h.CreateListing(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "ONIX 1.0", repo.created.Name)
	assert.Equal(t, "user-1", repo.created.OwnerID)
}
