package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-content-site/internal/gateway"
	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/internal/pageview"
)

type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	TextCode string `json:"text_code,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

// serve runs load in a view bound to the request. The view is closed when
// the handler returns, so a client that goes away never receives a late
// result.
func serve[T any](api *SiteAPI, c *gin.Context, status int, load pageview.LoadFunc[T]) {
	ctx := c.Request.Context()
	view := pageview.Start(ctx, load)
	defer view.Close()

	value, err := view.Wait(ctx)
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(status, value)
}

func (api *SiteAPI) writeError(c *gin.Context, err error) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context(), api.logger).Error("request failed", "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var storeErr *gateway.StoreError
	if errors.As(err, &storeErr) {
		if storeErr.IsInvalidRequest() {
			return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error(), TextCode: storeErr.TextCode()}
		}
		if storeErr.IsUniqueViolation() {
			return http.StatusConflict, errorResponse{Error: "conflict", Message: err.Error(), TextCode: storeErr.TextCode()}
		}
		return http.StatusBadGateway, errorResponse{Error: "upstream_error", Message: err.Error(), TextCode: storeErr.TextCode()}
	}

	switch {
	case goerrors.IsCategory(err, goerrors.CategoryValidation):
		return http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()}
	case goerrors.IsCategory(err, goerrors.CategoryNotFound):
		return http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()}
	case goerrors.IsCategory(err, goerrors.CategoryConflict):
		return http.StatusConflict, errorResponse{Error: "conflict", Message: err.Error()}
	case goerrors.IsCategory(err, goerrors.CategoryExternal):
		return http.StatusBadGateway, errorResponse{Error: "upstream_error", Message: err.Error()}
	case errors.Is(err, pageview.ErrClosed):
		return http.StatusServiceUnavailable, errorResponse{Error: "cancelled", Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func parseLimit(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
