package handler

import (
	"webcarros/internal/usecase"
)

var (
	listingHandler *ListingHandler
	draftHandler   *DraftHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	draftUseCase *usecase.DraftUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	draftHandler = NewDraftHandler(draftUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetDraftHandler() *DraftHandler {
	return draftHandler
}
