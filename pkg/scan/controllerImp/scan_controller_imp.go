package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "agrow/pkg/errors"
	"agrow/pkg/middleware"
	"agrow/pkg/scan/controller"
	"agrow/pkg/scan/service"
	"agrow/pkg/scan/types"
)

// SynthesisError is the single body returned for any failure after the
// request was accepted.
const SynthesisError = "AI Synthesis Error: Connection Interrupted."

// InvalidImageError answers a request whose imageUrl is not an image data URI.
const InvalidImageError = "imageUrl must be a base64 image data URI"

type scanCtrl struct{ s service.ScanService }

func New(s service.ScanService) controller.ScanController { return &scanCtrl{s: s} }

func (h *scanCtrl) Create(c echo.Context) error {
	var req types.CreateScanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "imageUrl required"})
	}
	rec, err := h.s.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		if apperr.IsKind(err, apperr.KindInvalid) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": InvalidImageError})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": SynthesisError})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *scanCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *scanCtrl) Get(c echo.Context) error {
	rec, err := h.s.Get(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}
