package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"mwtrack/internal/domain"
)

// Endpoint names, without the .php suffix.
const (
	EndpointLogin          = "login"
	EndpointProducts       = "product"
	EndpointProductDetail  = "detalleproduct"
	EndpointCart           = "cart"
	EndpointAddToCart      = "agregarcart"
	EndpointUpdateCart     = "updatecart"
	EndpointRemoveFromCart = "eliminarproductcart"
	EndpointCheckout       = "comprarproduct"
	EndpointOrders         = "order"
	EndpointMonitor        = "monitor"
)

// Client talks to the storefront backend over HTTP.
type Client struct {
	Base    string
	KeyHash string
	HTTP    *http.Client
}

// New returns a Client for base. A nil httpClient uses http.DefaultClient.
func New(base, keyHash string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		Base:    strings.TrimRight(base, "/"),
		KeyHash: keyHash,
		HTTP:    httpClient,
	}
}

// URL returns the absolute URL of endpoint.
func (c *Client) URL(endpoint string) string {
	return c.Base + "/" + endpoint + ".php"
}

// NewCall builds a POST to endpoint with the shared secret, keyUser (when
// set) and fields in the body.
func (c *Client) NewCall(
	endpoint string,
	keyUser domain.KeyUser,
	fields map[string]any,
) (domain.Call, error) {
	body := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		body[k] = v
	}
	body["keyhash"] = c.KeyHash
	if keyUser != "" {
		body["keyuser"] = keyUser
	}
	b, err := json.Marshal(body)
	if err != nil {
		return domain.Call{}, fmt.Errorf("encode %s request: %w", endpoint, err)
	}
	return domain.Call{Method: http.MethodPost, URL: c.URL(endpoint), Body: b}, nil
}

// Unsign returns call without the keyhash and keyuser body fields, so it can
// be stored without credentials.
func (c *Client) Unsign(call domain.Call) (domain.Call, error) {
	return rewriteBody(call, func(body map[string]json.RawMessage) error {
		delete(body, "keyhash")
		delete(body, "keyuser")
		return nil
	})
}

// Sign sets the keyhash and keyuser body fields of call. It is the inverse
// of Unsign.
func (c *Client) Sign(call domain.Call, keyUser domain.KeyUser) (domain.Call, error) {
	return rewriteBody(call, func(body map[string]json.RawMessage) error {
		var err error
		if body["keyhash"], err = json.Marshal(c.KeyHash); err != nil {
			return err
		}
		if keyUser != "" {
			body["keyuser"], err = json.Marshal(keyUser)
		}
		return err
	})
}

func rewriteBody(call domain.Call, edit func(map[string]json.RawMessage) error) (domain.Call, error) {
	body := make(map[string]json.RawMessage)
	if len(bytes.TrimSpace(call.Body)) > 0 {
		if err := json.Unmarshal(call.Body, &body); err != nil {
			return domain.Call{}, fmt.Errorf("decode %s body: %w", pathOf(call.URL), err)
		}
	}
	if err := edit(body); err != nil {
		return domain.Call{}, err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return domain.Call{}, err
	}
	call.Body = b
	return call, nil
}

// Send performs call and decodes the response envelope. It does not look at
// the envelope's success flag.
func (c *Client) Send(ctx context.Context, call domain.Call) (domain.Envelope, error) {
	const op = "Client.Send"
	log := slog.With("op", op, "method", call.Method, "url", call.URL)

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, bytes.NewReader(call.Body))
	if err != nil {
		return domain.Envelope{}, err
	}
	if len(call.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Envelope{}, ctxErr
		}
		log.Debug("request failed", "err", err)
		return domain.Envelope{}, fmt.Errorf("%w: %s %s: %w", ErrUnreachable, call.Method, pathOf(call.URL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain.Envelope{}, &StatusError{
			Method: call.Method,
			Path:   pathOf(call.URL),
			Status: resp.Status,
			Code:   resp.StatusCode,
		}
	}

	var env domain.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return domain.Envelope{}, fmt.Errorf("decode %s response: %w", pathOf(call.URL), err)
	}
	log.Debug("response", "success", env.Success)
	return env, nil
}

// Ping reports whether the backend answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.Base+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	resp.Body.Close()
	return nil
}

// call sends a POST to endpoint and rejects unsuccessful envelopes.
func (c *Client) call(
	ctx context.Context,
	endpoint string,
	keyUser domain.KeyUser,
	fields map[string]any,
	fallback string,
) (domain.Envelope, error) {
	req, err := c.NewCall(endpoint, keyUser, fields)
	if err != nil {
		return domain.Envelope{}, err
	}
	env, err := c.Send(ctx, req)
	if err != nil {
		return domain.Envelope{}, err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return env, &Error{Endpoint: endpoint, Message: msg}
	}
	return env, nil
}

func pathOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}

var _ domain.Backend = (*Client)(nil)
