package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiProbe/internal/tools"
	"github.com/labstack/echo/v4"
)

type toolRoutes struct {
	info       AppInfo
	dispatcher Dispatcher
}

type indexResponse struct {
	AppInfo
	Tools []string `json:"tools"`
}

func (r *toolRoutes) index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		AppInfo: r.info,
		Tools:   r.dispatcher.Catalog().Names(),
	})
}

type listResponse struct {
	Tools []tools.Tool `json:"tools"`
}

func (r *toolRoutes) list(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse{Tools: r.dispatcher.Catalog().Tools()})
}

type callRequest struct {
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
}

type callResponse struct {
	Result any `json:"result"`
}

// call answers 404 for an unknown tool. Any other failure is a 200 whose
// result is an error value.
func (r *toolRoutes) call(c echo.Context) error {
	var req callRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ToolName == "" {
		return badRequest(c, "tool_name is required")
	}

	res := r.dispatcher.Call(c.Request().Context(), req.ToolName, req.Arguments)
	if !r.dispatcher.Known(req.ToolName) {
		return c.JSON(http.StatusNotFound, res)
	}
	return c.JSON(http.StatusOK, callResponse{Result: res})
}
