package main

import (
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	unloggedPaths = map[string]bool{
		"/liveness":  true,
		"/readiness": true,
	}

	// query parameters carrying tokens or oauth codes
	redactedQueryParams = []string{"token", "code", "state"}
)

// ZeroLogMiddleware logs gin requests via zerolog
func ZeroLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		path := c.Request.URL.Path
		if unloggedPaths[path] {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if query := redactQuery(c.Request.URL.Query()); query != "" {
			path = path + "?" + query
		}

		var event *zerolog.Event
		if statusCode >= 500 {
			event = log.Warn()
		} else {
			event = log.Debug()
		}

		event.
			Int("statusCode", statusCode).
			Dur("latencyMs", latency).
			Str("clientIP", c.ClientIP()).
			Str("path", path).
			Str("slackRetryNum", c.GetHeader("X-Slack-Retry-Num")).
			Msgf("[GIN] %3d %13v %-7s %s", statusCode, latency, method, path)
	}
}

func redactQuery(query url.Values) string {
	for _, key := range redactedQueryParams {
		if query.Has(key) {
			query.Set(key, "***")
		}
	}
	return query.Encode()
}
