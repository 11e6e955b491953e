package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type DashboardService interface {
	GetDashboard(actor *entity.User) (*contract.DashboardResponse, apierror.ErrorResponse)
}

type DefaultDashboardRoute struct {
	DashboardService DashboardService
}

func NewDashboardDefault(dashboardService DashboardService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{DashboardService: dashboardService}
}

func (h *DefaultDashboardRoute) GetDashboard(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	dashboard, apierr := h.DashboardService.GetDashboard(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, dashboard)
}
