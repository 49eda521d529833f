package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with a UUID, echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("requestID")),
		)
	}
}

// ErrorMiddleware turns errors pushed via c.Error into the {error, message}
// envelope. Internal details only reach the client in development mode.
func ErrorMiddleware(log logger.Logger, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		payload := appErr.ToJSON()
		if status == http.StatusInternalServerError {
			log.Error("request failed", appErr,
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString("requestID")),
			)
			// Details carries the operation-level message ("Failed to ...");
			// the underlying cause is only exposed in development.
			if appErr.Details != "" {
				payload["message"] = appErr.Details
			}
			if env == "development" && appErr.Err != nil {
				payload["message"] = appErr.Err.Error()
			}
		}

		if !c.Writer.Written() {
			c.JSON(status, payload)
		}
	}
}

// RateLimit is a fixed-window per-IP limiter backed by redis. Redis being
// unreachable fails open: the request goes through and the failure is logged.
func RateLimit(rdb *redis.Client, window time.Duration, max int, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		// NX only sets the expiry when the key has none, so a failed set on
		// the first request is retried on the next one instead of leaving
		// the window key behind forever.
		if err := rdb.ExpireNX(c.Request.Context(), key, window).Err(); err != nil {
			log.Warn("failed to set rate limit window", zap.Error(err))
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "too many requests",
				"message": "Too many requests from this IP, please try again later.",
			})
			return
		}
		c.Next()
	}
}
