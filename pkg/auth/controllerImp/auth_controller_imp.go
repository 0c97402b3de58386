package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrow/entities"
	"agrow/pkg/auth/controller"
	"agrow/pkg/auth/service"
	apperr "agrow/pkg/errors"
	"agrow/pkg/middleware"
)

type authCtrl struct{ s service.AuthService }

func NewAuthController(s service.AuthService) controller.AuthController { return &authCtrl{s: s} }

// publicUser is the user as shown to clients; the password hash stays out.
type publicUser struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Phone       string                `json:"phone"`
	Role        string                `json:"role,omitempty"`
	FarmDetails *entities.FarmDetails `json:"farmDetails,omitempty"`
}

func toPublic(u *entities.User) publicUser {
	return publicUser{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role, FarmDetails: u.FarmDetails}
}

func (h *authCtrl) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	u, err := h.s.Login(c.Request().Context(), req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": middleware.TokenFor(u.ID),
		"user":  toPublic(u),
	})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	u, err := h.s.User(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return c.JSON(apperr.HTTPStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toPublic(u))
}
