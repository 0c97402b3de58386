package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "agrow/pkg/errors"
	"agrow/pkg/middleware"
	"agrow/pkg/purchase/controller"
	"agrow/pkg/purchase/service"
)

type purchaseCtrl struct{ s service.PurchaseService }

func New(s service.PurchaseService) controller.PurchaseController { return &purchaseCtrl{s: s} }

func (h *purchaseCtrl) Create(c echo.Context) error {
	var in service.CreatePurchaseRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *purchaseCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}
