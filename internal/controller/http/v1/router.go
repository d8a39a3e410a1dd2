package httpv1

import (
	"context"
	"net/http"

	"github.com/Egor213/LogiProbe/internal/service"
	"github.com/Egor213/LogiProbe/internal/tools"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Dispatcher interface {
	Call(ctx context.Context, name string, args map[string]any) any
	Known(name string) bool
	Catalog() *tools.Catalog
}

type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func ConfigureRouter(handler *echo.Echo, info AppInfo, d Dispatcher, journal service.Journal) {
	handler.Use(middleware.Recover())

	tr := &toolRoutes{info: info, dispatcher: d}
	handler.GET("/", tr.index)
	handler.GET("/health", health)
	handler.GET("/tools/list", tr.list)
	handler.POST("/tools/call", tr.call)

	jr := &journalRoutes{journal: journal}
	g := handler.Group("/journal")
	g.GET("/calls", jr.calls)
	g.GET("/stats", jr.stats)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
