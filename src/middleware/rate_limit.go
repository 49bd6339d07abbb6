package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"suggestion-app/src/logger"
	"suggestion-app/src/metrics"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

// maxTrackedClients 追跡するクライアントIPの上限
const maxTrackedClients = 10000

// window はクライアントごとの固定ウィンドウ
type window struct {
	mu    sync.Mutex
	start time.Time
	count int
}

// RateLimiter 固定ウィンドウ方式のクライアントIP単位レート制限
type RateLimiter struct {
	limit   int
	period  time.Duration
	clients *expirable.LRU[string, *window]
}

// NewRateLimiter creates a limiter allowing limit requests per period and client
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		clients: expirable.NewLRU[string, *window](maxTrackedClients, nil, period),
	}
}

// Allow records a request and reports whether it is within the limit.
// 拒否した場合は次のウィンドウまでの待ち時間を返す
func (l *RateLimiter) Allow(clientIP string) (bool, time.Duration) {
	now := time.Now()

	w, ok := l.clients.Get(clientIP)
	if !ok {
		w = &window{start: now}
		l.clients.Add(clientIP, w)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Sub(w.start) >= l.period {
		w.start = now
		w.count = 0
	}

	if w.count >= l.limit {
		return false, w.start.Add(l.period).Sub(now)
	}
	w.count++
	return true, 0
}

// RateLimitMiddleware レート制限用のmiddleware
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, retryAfter := limiter.Allow(clientIP)
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			logger.WithFields(logrus.Fields{
				"client_ip":   clientIP,
				"method":      c.Request.Method,
				"uri":         c.Request.RequestURI,
				"retry_after": seconds,
			}).Warn("レート制限に達しました")

			metrics.RateLimitedTotal.Inc()
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too Many Requests",
				"retry_after": seconds,
			})
			return
		}

		c.Next()
	}
}
