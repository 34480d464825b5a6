package handler

import (
	"github.com/labstack/echo/v4"

	"webcarros/internal/adapter/api/middleware"
	"webcarros/internal/usecase"
	"webcarros/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

// ListListings is the public browse view: most recent first, or a
// case-insensitive name prefix search when ?q= is present.
func (h *ListingHandler) ListListings(c echo.Context) error {
	query := c.QueryParam("q")

	listings, err := h.listingUseCase.SearchListings(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	listings, err := h.listingUseCase.ListMyListings(c.Request().Context(), ident)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	report, err := h.listingUseCase.DeleteListing(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
