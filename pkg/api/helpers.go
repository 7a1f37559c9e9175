package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/sethgrid/pester"
)

// NewHTTPClient returns a single attempt http client with a traced transport; failures are reported, never retried.
// The client is shared for the lifetime of the process, so its error log stays off.
func NewHTTPClient(timeout time.Duration) *pester.Client {
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}, Timeout: timeout})
	client.MaxRetries = 1
	client.Backoff = pester.ExponentialJitterBackoff
	client.Timeout = timeout

	return client
}

// TraceRequest attaches the span found in ctx to an outgoing request
func TraceRequest(ctx context.Context, request *http.Request) (*http.Request, *nethttp.Tracer) {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return request, nil
	}

	// add tracing context
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

	// collect additional information on setting up connections
	return nethttp.TraceRequest(span.Tracer(), request)
}

// ReadBodyExcerpt reads at most limit bytes of a response body for logging purposes
func ReadBodyExcerpt(body io.Reader, limit int64) string {
	excerpt, err := io.ReadAll(io.LimitReader(body, limit))
	if err != nil {
		return ""
	}
	return string(excerpt)
}
