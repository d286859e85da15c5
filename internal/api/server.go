// Package api serves the role-scoped JSON API and the HTML overview page.
package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/logging"
	"swapnet-ops/internal/metrics"
)

//go:embed templates/overview.html
var content embed.FS

const headerRequestID = "X-Request-ID"

// Server routes HTTP requests to the admin, operator and user views.
type Server struct {
	admin    access.AdminStore
	operator access.OperatorStore
	user     access.UserStore
	metrics  *metrics.Metrics
	log      *slog.Logger
	tpl      *template.Template
	engine   *gin.Engine
}

// NewServer builds the router. m may be nil to disable metrics.
func NewServer(admin access.AdminStore, operator access.OperatorStore, user access.UserStore, m *metrics.Metrics, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		admin:    admin,
		operator: operator,
		user:     user,
		metrics:  m,
		log:      log,
		tpl:      template.Must(template.New("overview.html").Funcs(funcs).ParseFS(content, "templates/overview.html")),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestContext())
	// metrics wraps errorHandler so recorded statuses include rendered errors
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
	}
	r.Use(s.errorHandler())
	if s.metrics != nil {
		r.GET("/metrics", s.metrics.Endpoint())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", s.overview)

	api := r.Group("/api")
	s.registerAdmin(api.Group("/admin"))
	s.registerOperator(api.Group("/operator"))
	s.registerUser(api.Group("/user"))
	r.NoRoute(s.noRoute)
	return r
}

// requestContext tags each request with an id and puts a request-scoped
// logger into its context.
func (s *Server) requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Header(headerRequestID, reqID)
		c.Set(headerRequestID, reqID)

		log := s.log.With("request_id", reqID, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(logging.NewContext(c.Request.Context(), log))

		start := time.Now()
		c.Next()
		log.Debug("request served", "status", c.Writer.Status(), "duration", time.Since(start))
	}
}

func (s *Server) recordAction(role access.Role, action string, matched bool) {
	if s.metrics != nil {
		s.metrics.RecordAction(string(role), action, matched)
	}
}
