package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/apperr"
	"swapnet-ops/internal/logging"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
	Timestamp string            `json:"timestamp"`
	Path      string            `json:"path"`
}

// errorHandler renders the last error attached with c.Error.
func (s *Server) errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := apperr.From(c.Errors.Last().Err)
		reqID := c.GetString(headerRequestID)

		log := logging.FromContext(c.Request.Context())
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("request failed", "code", appErr.Code, "err", appErr)
		} else {
			log.Warn("request rejected", "code", appErr.Code, "message", appErr.Message)
		}

		c.JSON(appErr.HTTPStatus, errorResponse{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Details:   appErr.Details,
			RequestID: reqID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      c.Request.URL.Path,
		})
	}
}

// fail attaches err for errorHandler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// noRoute reports unknown roles under /api/ separately from unknown paths.
func (s *Server) noRoute(c *gin.Context) {
	if rest, ok := strings.CutPrefix(c.Request.URL.Path, "/api/"); ok {
		role, _, _ := strings.Cut(rest, "/")
		if _, err := access.ParseRole(role); err != nil {
			fail(c, err)
			return
		}
	}
	fail(c, apperr.New(apperr.CodeNotFound, "route not found", http.StatusNotFound).WithDetail("path", c.Request.URL.Path))
}
