package transport

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/logger"
)

// HttpResponse is the envelope of every successful response
type HttpResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewHttp returns a configured gin engine instance. Middlewares are attached by the caller.
func NewHttp(cfg config.Configuration) *gin.Engine {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	ginEngine := gin.New()
	ginEngine.RemoveExtraSlash = true
	ginEngine.NoRoute(func(c *gin.Context) {
		c.Error(errRouteNotFound)
	})
	return ginEngine
}

// Success writes data wrapped in an HttpResponse
func Success(c *gin.Context, status int, data interface{}) {
	SuccessWithMessage(c, status, "", data)
}

// SuccessWithMessage writes data wrapped in an HttpResponse along with a message
func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, HttpResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// RunHttp runs the http server with a graceful shutdown
// functionality
func RunHttp(cfg config.Configuration, g *gin.Engine) error {
	// Create a new http server from gin engine
	// instance
	srv := &http.Server{
		Addr:              resolveAddr(cfg.Server),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Setup graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling below
	go func() {
		logger.Log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	// Listen for the interrupt signal or a failure to listen.
	select {
	case <-ctx.Done():
	case err := <-errs:
		return err
	}

	// Restore default behavior on the interrupt signal and notify user of shutdown.
	stop()
	logger.Log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}

// Resolves address provided by http server
// configuration
func resolveAddr(cfg config.Server) string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
