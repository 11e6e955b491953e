package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/domain/funil"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type EstabelecimentoService interface {
	GetEstabelecimentos(actor *entity.User, filtro funil.Filtro) ([]*contract.EstabelecimentoResponse, apierror.ErrorResponse)
	GetEstabelecimento(actor *entity.User, id int64) (*contract.EstabelecimentoResponse, apierror.ErrorResponse)
	CreateEstabelecimento(actor *entity.User, req *contract.EstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse)
	UpdateEstabelecimento(actor *entity.User, id int64, req *contract.UpdateEstabelecimentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse)
	SetRelacionamento(actor *entity.User, id int64, req *contract.RelacionamentoRequest) (*contract.EstabelecimentoResponse, apierror.ErrorResponse)
	DeleteEstabelecimento(actor *entity.User, id int64) apierror.ErrorResponse
	GetHistorico(actor *entity.User, id int64) ([]*contract.HistoricoResponse, apierror.ErrorResponse)
}

type ContatoService interface {
	GetContatos(actor *entity.User, estabelecimentoID int64) ([]*contract.ContatoResponse, apierror.ErrorResponse)
	CreateContato(actor *entity.User, estabelecimentoID int64, req *contract.ContatoRequest) (*contract.ContatoResponse, apierror.ErrorResponse)
	DeleteContato(actor *entity.User, id int64) apierror.ErrorResponse
}

type DefaultEstabelecimentoRoute struct {
	EstService     EstabelecimentoService
	ContatoService ContatoService
}

func NewEstabelecimentoDefault(estService EstabelecimentoService, contatoService ContatoService) *DefaultEstabelecimentoRoute {
	return &DefaultEstabelecimentoRoute{
		EstService:     estService,
		ContatoService: contatoService,
	}
}

// GetEstabelecimentos lists establishments. The three filter axes arrive as
// query params: ?q= (free text), ?cidade= (todas/outras/a city name) and
// ?status= (todos/exclusivos/sem_visita/atrasados/sem_concorrente/oportunidade).
func (h *DefaultEstabelecimentoRoute) GetEstabelecimentos(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	status, ok := funil.ParseStatus(c.QueryParam("status"))
	if !ok {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("status", "known status filter"))
	}

	filtro := funil.Filtro{
		Texto:  c.QueryParam("q"),
		Regiao: funil.ParseRegiao(c.QueryParam("cidade")),
		Status: status,
	}

	list, apierr := h.EstService.GetEstabelecimentos(user, filtro)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"estabelecimentos": list}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultEstabelecimentoRoute) GetEstabelecimento(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	est, apierr := h.EstService.GetEstabelecimento(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *DefaultEstabelecimentoRoute) CreateEstabelecimento(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EstabelecimentoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	est, apierr := h.EstService.CreateEstabelecimento(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, est)
}

func (h *DefaultEstabelecimentoRoute) UpdateEstabelecimento(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateEstabelecimentoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	est, apierr := h.EstService.UpdateEstabelecimento(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *DefaultEstabelecimentoRoute) SetRelacionamento(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.RelacionamentoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	est, apierr := h.EstService.SetRelacionamento(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *DefaultEstabelecimentoRoute) DeleteEstabelecimento(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr = h.EstService.DeleteEstabelecimento(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DefaultEstabelecimentoRoute) GetHistorico(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	entries, apierr := h.EstService.GetHistorico(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"historico": entries}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultEstabelecimentoRoute) GetContatos(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	contatos, apierr := h.ContatoService.GetContatos(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"contatos": contatos}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultEstabelecimentoRoute) CreateContato(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.ContatoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contato, apierr := h.ContatoService.CreateContato(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, contato)
}

func (h *DefaultEstabelecimentoRoute) DeleteContato(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, apierr := parseIDParam(c, "contatoId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr = h.ContatoService.DeleteContato(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseIDParam reads a positive int64 path param.
func parseIDParam(c echo.Context, name string) (int64, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, apierror.NewMissingParamError(name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}
