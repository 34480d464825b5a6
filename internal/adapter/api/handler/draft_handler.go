package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"webcarros/internal/adapter/api/middleware"
	"webcarros/internal/usecase"
	"webcarros/pkg/errors"
	"webcarros/pkg/logger"
	"webcarros/pkg/response"
)

// DraftHandler exposes the authoring session: image uploads/removals before a
// listing is committed, and the commit itself.
type DraftHandler struct {
	draftUseCase *usecase.DraftUseCase
	maxFileSize  int64
}

func NewDraftHandler(draftUseCase *usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{
		draftUseCase: draftUseCase,
		maxFileSize:  5 * 1024 * 1024,
	}
}

type createListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Year        string `json:"year" validate:"required"`
	Km          string `json:"km" validate:"required"`
	Price       string `json:"price" validate:"required"`
	City        string `json:"city" validate:"required"`
	Whatsapp    string `json:"whatsapp" validate:"required,numeric,min=11,max=12"`
	Description string `json:"description" validate:"required"`
}

func (h *DraftHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	ident := middleware.IdentityFromContext(c)
	mimeType := file.Header.Get("Content-Type")

	ref, err := h.draftUseCase.AddImage(c.Request().Context(), ident, src, mimeType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ref)
}

func (h *DraftHandler) ListImages(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	return response.Success(c, h.draftUseCase.Images(ident))
}

func (h *DraftHandler) DeleteImage(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	if err := h.draftUseCase.RemoveImage(c.Request().Context(), ident, c.Param("assetId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "removed"})
}

func (h *DraftHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ident := middleware.IdentityFromContext(c)

	listing, err := h.draftUseCase.Commit(c.Request().Context(), ident, usecase.CommitListingInput{
		Name:        req.Name,
		Model:       req.Model,
		Year:        req.Year,
		Km:          req.Km,
		Price:       req.Price,
		City:        req.City,
		Whatsapp:    req.Whatsapp,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}
