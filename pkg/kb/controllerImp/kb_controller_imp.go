package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agrow/entities"
	"agrow/pkg/kb/controller"
	"agrow/pkg/kb/service"
)

type KBCtrl struct{ s service.KBService }

func New(s service.KBService) *KBCtrl { return &KBCtrl{s: s} }

var _ controller.KBController = (*KBCtrl)(nil)

func (h *KBCtrl) List(c echo.Context) error {
	if crop := strings.TrimSpace(c.QueryParam("crop")); crop != "" {
		out := []entities.Disease{}
		for _, d := range h.s.All() {
			if strings.EqualFold(d.Crop, crop) {
				out = append(out, d)
			}
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, h.s.All())
}

func (h *KBCtrl) Lookup(c echo.Context) error {
	crop := strings.TrimSpace(c.QueryParam("crop"))
	name := strings.TrimSpace(c.QueryParam("name"))
	if crop == "" || name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop and name required"})
	}
	d, ok := h.s.Lookup(crop, name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, d)
}
