package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotency-Replayed"
	maxIdempotencyKeyLength   = 255
)

type IdempotencyMiddleware struct {
	store  shared.IdempotencyStore
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewIdempotencyMiddleware(store shared.IdempotencyStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) *IdempotencyMiddleware {
	ttl := cfg.Sweeper.IdempotencyTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdempotencyMiddleware{
		store:  store,
		clock:  clk,
		ttl:    ttl,
		logger: logger,
	}
}

// Handle replays the stored response for a known key without invoking the
// handler. Otherwise the response is captured and stored unless it is a 5xx.
// Store failures never fail the request. Behind RequireOperator the key is
// scoped to the operator, so tenants never see each other's responses.
func (m *IdempotencyMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Idempotency-Key must be at most 255 characters",
			})
			return
		}

		key = scopedKey(c, key)
		ctx := c.Request.Context()
		rec, err := m.store.Get(ctx, key, m.clock.Now())
		if err != nil {
			m.logger.WarnContext(ctx, "idempotency lookup failed", "idempotency_key", key, "error", err.Error())
		}
		if rec != nil {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(rec.StatusCode, "application/json; charset=utf-8", rec.ResponseBody)
			c.Abort()
			return
		}

		w := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status >= http.StatusInternalServerError || w.body.Len() == 0 {
			return
		}

		now := m.clock.Now()
		err = m.store.Save(ctx, shared.IdempotencyRecord{
			Key:          key,
			StatusCode:   status,
			ResponseBody: bytes.Clone(w.body.Bytes()),
			CreatedAt:    now,
			ExpiresAt:    now.Add(m.ttl),
		})
		if err != nil {
			m.logger.WarnContext(ctx, "idempotency save failed", "idempotency_key", key, "error", err.Error())
		}
	}
}

func scopedKey(c *gin.Context, key string) string {
	if operatorID, ok := GetOperatorID(c); ok {
		return operatorID.String() + ":" + key
	}
	return key
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
