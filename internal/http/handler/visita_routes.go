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

type VisitaService interface {
	GetVisitas(actor *entity.User, estabelecimentoID int64) ([]*contract.VisitaResponse, apierror.ErrorResponse)
	GetVisita(actor *entity.User, id int64) (*contract.VisitaResponse, apierror.ErrorResponse)
	CreateVisita(actor *entity.User, req *contract.VisitaRequest) (*contract.VisitaResponse, apierror.ErrorResponse)
	UpdateVisita(actor *entity.User, id int64, req *contract.UpdateVisitaRequest) (*contract.VisitaResponse, apierror.ErrorResponse)
	DeleteVisita(actor *entity.User, id int64) apierror.ErrorResponse
}

type DefaultVisitaRoute struct {
	VisitaService VisitaService
}

func NewVisitaDefault(visitaService VisitaService) *DefaultVisitaRoute {
	return &DefaultVisitaRoute{VisitaService: visitaService}
}

// GetVisitas lists visits, newest first. ?estabelecimentoId= narrows the
// listing to a single establishment's timeline.
func (h *DefaultVisitaRoute) GetVisitas(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var estID int64
	if raw := strings.TrimSpace(c.QueryParam("estabelecimentoId")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
		}
		estID = parsed
	}

	visitas, apierr := h.VisitaService.GetVisitas(user, estID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"visitas": visitas}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultVisitaRoute) GetVisita(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	visita, apierr := h.VisitaService.GetVisita(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, visita)
}

func (h *DefaultVisitaRoute) CreateVisita(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.VisitaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	visita, apierr := h.VisitaService.CreateVisita(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, visita)
}

func (h *DefaultVisitaRoute) UpdateVisita(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateVisitaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	visita, apierr := h.VisitaService.UpdateVisita(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, visita)
}

func (h *DefaultVisitaRoute) DeleteVisita(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr = h.VisitaService.DeleteVisita(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
