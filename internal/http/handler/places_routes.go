package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type PlacesService interface {
	Search(actor *entity.User, query, cidade string) ([]*contract.PlaceResult, apierror.ErrorResponse)
	Details(actor *entity.User, placeID string) (*contract.PlaceDetails, apierror.ErrorResponse)
	StreetView(actor *entity.User, lat, lng float64) (*contract.StreetViewResponse, apierror.ErrorResponse)
}

type DefaultPlacesRoute struct {
	PlacesService PlacesService
}

func NewPlacesDefault(placesService PlacesService) *DefaultPlacesRoute {
	return &DefaultPlacesRoute{PlacesService: placesService}
}

func (h *DefaultPlacesRoute) Search(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("query"))
	}

	cidade := strings.TrimSpace(c.QueryParam("cidade"))
	results, apierr := h.PlacesService.Search(user, query, cidade)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.PlaceSearchResponse{Results: results})
}

func (h *DefaultPlacesRoute) Details(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	placeID := strings.TrimSpace(c.Param("placeId"))
	if placeID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("placeId"))
	}

	details, apierr := h.PlacesService.Details(user, placeID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.PlaceDetailsResponse{Result: details})
}

func (h *DefaultPlacesRoute) StreetView(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	lat, apierr := parseFloatParam(c, "lat")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	lng, apierr := parseFloatParam(c, "lng")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := h.PlacesService.StreetView(user, lat, lng)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func parseFloatParam(c echo.Context, name string) (float64, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, apierror.NewMissingParamError(name)
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "float64")
	}
	return val, nil
}
