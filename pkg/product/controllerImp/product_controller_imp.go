package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "agrow/pkg/errors"
	"agrow/pkg/product/controller"
	"agrow/pkg/product/service"
)

type productCtrl struct{ s service.ProductService }

func New(s service.ProductService) controller.ProductController { return &productCtrl{s: s} }

func (h *productCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context())
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
