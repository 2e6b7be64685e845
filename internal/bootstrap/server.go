package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownGrace = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StartHTTPServer serves router until SIGINT or SIGTERM.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	go func() {
		select {
		case sig := <-quit:
			cancel(fmt.Errorf("signal %s", sig))
		case <-ctx.Done():
		}
	}()

	if err := Serve(ctx, router, cfg, auditLogger); err != nil {
		zap.L().Error("http server stopped with error", zap.Error(err))
	}
}

// Serve runs the API until ctx is cancelled, then drains in-flight requests
// for up to shutdownGrace. Startup and both ends of the shutdown are audited.
func Serve(ctx context.Context, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ln)
	}()

	zap.L().Info("HTTP server running", zap.String("addr", ln.Addr().String()))
	auditLogger.Log(ctx, AuditLog{
		Action:  "SERVER_STARTED",
		Message: "API is accepting requests",
		Meta: map[string]any{
			"addr":          ln.Addr().String(),
			"read_timeout":  cfg.ReadTimeout.String(),
			"write_timeout": cfg.WriteTimeout.String(),
		},
	})

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	reason := "context cancelled"
	if cause := context.Cause(ctx); cause != nil {
		reason = cause.Error()
	}
	zap.L().Info("Shutdown signal received", zap.String("reason", reason))
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "API is draining requests",
		Meta:    map[string]any{"reason": reason},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	outcome := "drained"
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		outcome = "forced"
		zap.L().Error("Forced shutdown", zap.Error(err))
	}
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_STOPPED",
		Message: "API stopped",
		Meta:    map[string]any{"outcome": outcome},
	})

	if serveErr := <-served; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return err
}
