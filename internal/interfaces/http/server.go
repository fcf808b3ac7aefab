// Package http exposes the webhook endpoint and health check.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/config"
	"unibot/internal/shared/goroutine"
	"unibot/internal/shared/logger"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// UpdateHandler consumes one inbound Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update telegram.Update)
}

// Server hosts /healthz and, in webhook mode, POST /webhook. Each accepted
// update is handled on its own goroutine so Telegram gets a fast 200 and a
// slow handler cannot stall delivery.
type Server struct {
	engine        *gin.Engine
	server        *http.Server
	handler       UpdateHandler
	webhookSecret string
	logger        logger.Interface
}

func NewServer(cfg config.ServerConfig, webhookSecret string, handler UpdateHandler, log logger.Interface) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:        engine,
		handler:       handler,
		webhookSecret: webhookSecret,
		logger:        log.Named("http"),
	}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/webhook", s.handleWebhook)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleWebhook(c *gin.Context) {
	if s.webhookSecret != "" && c.GetHeader(secretTokenHeader) != s.webhookSecret {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Warnw("failed to parse webhook update", "error", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	goroutine.SafeGo(s.logger, "webhook-update", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.handler.HandleUpdate(ctx, update)
	})

	c.Status(http.StatusOK)
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infow("http server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Engine exposes the router for handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
