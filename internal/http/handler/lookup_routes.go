package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type ScrapeService interface {
	Scrape(actor *entity.User, rawURL string) (*contract.ScrapeResponse, apierror.ErrorResponse)
}

type FotoService interface {
	UploadFoto(actor *entity.User, req *contract.UploadFotoRequest) (*contract.UploadFotoResponse, apierror.ErrorResponse)
}

// DefaultLookupRoute groups the outbound helpers: link scraping and photo
// optimization. Both are POST endpoints taking a URL in the body.
type DefaultLookupRoute struct {
	ScrapeService ScrapeService
	FotoService   FotoService
}

func NewLookupDefault(scrapeService ScrapeService, fotoService FotoService) *DefaultLookupRoute {
	return &DefaultLookupRoute{
		ScrapeService: scrapeService,
		FotoService:   fotoService,
	}
}

func (h *DefaultLookupRoute) ScrapeLink(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.ScrapeService.Scrape(user, req.URL)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultLookupRoute) UploadFoto(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UploadFotoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.FotoService.UploadFoto(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
