package controller

import "github.com/labstack/echo/v4"

type ScanController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
}
