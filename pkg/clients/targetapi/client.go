package targetapi

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/albumlist/albumlist-relay/pkg/api"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/pkg/errors"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with a team's own albumlist
//
//go:generate mockgen -package=targetapi -destination ./mock.go -source=client.go
type Client interface {
	Forward(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (response *Response, err error)
	ForwardEvent(ctx context.Context, target api.URLTarget, event []byte) (err error)
	Probe(ctx context.Context, target api.URLTarget) (statusCode int, err error)
}

// NewClient returns a targetapi.Client
func NewClient(config *api.APIConfig) Client {
	targetConfig := config.Integrations.Target

	// probes report redirects as they are instead of following them
	probeClient := pester.NewExtendedClient(&http.Client{
		Transport: &nethttp.Transport{},
		Timeout:   targetConfig.ProbeTimeout(),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	})
	probeClient.MaxRetries = 1
	probeClient.Timeout = targetConfig.ProbeTimeout()

	return &client{
		config:      targetConfig,
		httpClient:  api.NewHTTPClient(targetConfig.ForwardTimeout()),
		probeClient: probeClient,
	}
}

type client struct {
	config      *api.TargetConfig
	httpClient  *pester.Client
	probeClient *pester.Client
}

// Forward posts the original slash command form to the albumlist and returns its answer unchanged
func (c *client) Forward(ctx context.Context, target api.URLTarget, subpath string, form url.Values) (response *Response, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.ForwardTimeout())
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, slackURL(target, subpath), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, c.httpClient, request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       api.ReadBodyExcerpt(resp.Body, 512),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// ForwardEvent re-posts an events api callback to the albumlist
func (c *client) ForwardEvent(ctx context.Context, target api.URLTarget, event []byte) (err error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.EventTimeout())
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, slackURL(target, "events"), bytes.NewReader(event))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, c.httpClient, request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       api.ReadBodyExcerpt(resp.Body, 512),
		}
	}

	return nil
}

// Probe issues a HEAD request against the albumlist and returns the status code it answers with
func (c *client) Probe(ctx context.Context, target api.URLTarget) (statusCode int, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.ProbeTimeout())
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodHead, target.String(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.do(ctx, c.probeClient, request)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (c *client) do(ctx context.Context, httpClient *pester.Client, request *http.Request) (*http.Response, error) {
	request, ht := api.TraceRequest(ctx, request)

	resp, err := httpClient.Do(request)
	if ht != nil {
		ht.Finish()
	}
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, errors.Wrapf(ErrTimeout, "%v %v", request.Method, request.URL.Host)
		}
		return nil, errors.Wrapf(err, "Calling %v %v failed", request.Method, request.URL.Host)
	}

	return resp, nil
}

// slackURL returns <target>/slack/<subpath>
func slackURL(target api.URLTarget, subpath string) string {
	return strings.TrimSuffix(target.String(), "/") + "/slack/" + strings.TrimPrefix(subpath, "/")
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
