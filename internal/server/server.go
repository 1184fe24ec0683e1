package server

import (
	"context"
	"net"
	"net/http"

	"feedbackManagement/internal/auth"
	"feedbackManagement/internal/config"
	"feedbackManagement/internal/feedback"
	"feedbackManagement/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server bundles the service dependencies behind the HTTP surface.
type Server struct {
	Auth     *auth.Service
	Tokens   *auth.TokenService
	Feedback *feedback.Service
	Users    repository.UserRepositoryI
}

// Router builds the gin engine with all routes registered.
// GET /feedback and /healthz are deliberately unauthenticated; everything
// else behind RequireAuth expects a Bearer token.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", s.handleSignup)
	r.POST("/login", s.handleLogin)
	r.GET("/feedback", s.handleListFeedback)

	authed := r.Group("/", RequireAuth(s.Tokens))
	authed.POST("/feedback", s.handleSubmitFeedback)
	authed.GET("/feedback/received", s.handleListReceived)
	authed.GET("/users", s.handleListUsers)

	return r
}

// Start starts the HTTP server on the configured address and returns a
// shutdown function that drains in-flight requests.
func Start(cfg *config.Config, s *Server) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{Handler: s.Router()}
	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	}, nil
}
