package controller

import "github.com/labstack/echo/v4"

type KBController interface {
	List(c echo.Context) error
	Lookup(c echo.Context) error
}
