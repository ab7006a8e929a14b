package transport

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/logger"
	"github.com/npesaras/clens/internal/validate"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/secure"
	"go.uber.org/ratelimit"
)

const requestIDKey = "request_id"

// RateLimiterMiddleware limits the number of operation
// per second
func RateLimiterMiddleware(rps int) gin.HandlerFunc {
	limit := ratelimit.New(rps)
	return func(c *gin.Context) {
		limit.Take()
	}
}

// SecurityMiddleware adds essential security headers to every response
func SecurityMiddleware(cfg config.Configuration) gin.HandlerFunc {
	secureMiddleware := secure.New(cfg.Server.Security)
	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		// For redirection avoid Header rewrite
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}

// CorsMiddleware answers preflight requests and sets CORS headers on the rest
func CorsMiddleware(cfg config.Configuration) gin.HandlerFunc {
	ac := cfg.Server.AccessControl
	handler := cors.New(cors.Options{
		AllowedOrigins:   ac.AllowedOrigins,
		AllowedMethods:   ac.AllowedMethods,
		AllowedHeaders:   ac.AllowedHeaders,
		ExposedHeaders:   ac.ExposedHeaders,
		AllowCredentials: ac.AllowCredentials,
		MaxAge:           ac.MaxAge,
	})
	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		// Preflight requests were answered by the handler
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Abort()
		}
	}
}

// LoggerMiddleware tags the request with an id and logs it once it completes
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			if id, err := uuid.NewV4(); err == nil {
				requestID = id.String()
			}
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		entry := logger.Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       RequestURL(c.Request),
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         resolveIP(c.Request),
		})
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}

// RecoveryMiddleware turns panics into internal errors for ErrorMiddleware to render
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(logger.Log.WriterLevel(logrus.ErrorLevel), func(c *gin.Context, recovered interface{}) {
		c.Error(internal.WrapErrorf(fmt.Errorf("%v", recovered), internal.ErrorCodeInternal, "Recovered from panic"))
		c.Abort()
	})
}

// AuthMiddleware requires every request to present the configured access token
// as a Bearer credential
func AuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, credential, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(credential) == "" {
			c.Error(errMissingToken)
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(credential)), []byte(token)) != 1 {
			c.Error(errInvalidToken)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorMiddleware is a post middleware
// that handles errors for every requests
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Execute whatever endpoint is hit
		c.Next()

		// If no errors occurred then return early
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		code := internal.CodeOf(err)

		message := internalErrorMessage
		var coded *internal.Error
		if code != internal.ErrorCodeInternal && errors.As(err, &coded) {
			message = coded.Message()
		}
		if code == internal.ErrorCodeInternal {
			logger.Log.WithFields(logrus.Fields{
				"request_id": c.GetString(requestIDKey),
				"method":     c.Request.Method,
				"path":       RequestURL(c.Request),
			}).WithError(err).Error("Captured error")
		}
		// Some handler already answered
		if c.Writer.Written() {
			return
		}

		res := HttpErrorResponse{
			Name:      NameOf(code),
			Message:   message,
			Timestamp: time.Now().UTC(),
			Path:      c.Request.URL.Path,
			Method:    c.Request.Method,
		}
		for _, fe := range validate.Issues(err) {
			res.Issues = append(res.Issues, HttpIssue{
				Field:   fe.Field,
				Message: fe.Message(),
			})
		}
		c.AbortWithStatusJSON(StatusOf(code), res)
	}
}
