// internal/gateway/rest/client.go
//
// Hosted-service driver for the Remote Data Gateway.
//
// Context
// -------
// The hosted backend exposes each collection under `/rest/v1/<collection>`
// with PostgREST query semantics (`order=<col>.desc`, `id=eq.<id>`) and a
// JSON error envelope of {code, message}.  Writes send
// `Prefer: return=representation` so the canonical row comes back with the
// service-assigned id and timestamp.  An update that succeeds but returns an
// empty set is reported as (nil, nil): a row-security policy swallowed the
// write, and the caller must refetch rather than trust its local copy.
//
// A client constructed without a URL or service key is a recognized state,
// not an error: every operation returns gateway.ErrNotConfigured so views
// can degrade to a localized "unavailable" banner.
//
// Notes
// -----
// • No retries and no driver-side timeout; a hung request is the caller's
//   context's problem, matching the upstream service contract.
// • Oxford commas, two spaces after periods.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/metrics"
)

// Compile-time assertion: *Client satisfies gateway.Gateway.
var _ gateway.Gateway = (*Client)(nil)

// Client talks to the hosted service.  Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	session gateway.SessionState
}

// New returns a Client.  Empty baseURL or apiKey yields a client whose every
// call reports gateway.ErrNotConfigured.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool { return c.baseURL != "" && c.apiKey != "" }

/*──────────────────────────── collections ──────────────────────────────────*/

// Select fetches all records of collection ordered by orderBy.
func (c *Client) Select(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error) {
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	dir := "asc"
	if descending {
		dir = "desc"
	}
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", orderBy+"."+dir)

	body, err := c.do(ctx, http.MethodGet, c.restURL(collection)+"?"+q.Encode(), nil, collection, "select", false)
	if err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("gateway select %s: decode: %w", collection, err)
	}
	return rows, nil
}

// Insert stores record and returns the canonical row.
func (c *Client) Insert(ctx context.Context, collection string, record any) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	body, err := c.do(ctx, http.MethodPost, c.restURL(collection), record, collection, "insert", true)
	if err != nil {
		return nil, err
	}
	return firstRow(body)
}

// Update replaces the record's mutable fields.  (nil, nil) means the service
// accepted the write but returned no row.
func (c *Client) Update(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	u := c.restURL(collection) + "?id=eq." + strconv.FormatInt(id, 10)
	body, err := c.do(ctx, http.MethodPatch, u, record, collection, "update", true)
	if err != nil {
		return nil, err
	}

	row, err := firstRow(body)
	if err != nil {
		// Empty result set: ambiguous write, caller resynchronizes.
		return nil, nil
	}
	return row, nil
}

// Delete removes the record by id.
func (c *Client) Delete(ctx context.Context, collection string, id int64) error {
	if !c.Configured() {
		return gateway.ErrNotConfigured
	}

	u := c.restURL(collection) + "?id=eq." + strconv.FormatInt(id, 10)
	_, err := c.do(ctx, http.MethodDelete, u, nil, collection, "delete", false)
	return err
}

/*──────────────────────────── auth ─────────────────────────────────────────*/

// Session returns the current session, or nil when signed out.
func (c *Client) Session(_ context.Context) (*gateway.Session, error) {
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	return c.session.Current(), nil
}

// OnSessionChange registers fn for session pushes.
func (c *Client) OnSessionChange(fn func(*gateway.Session)) (cancel func()) {
	return c.session.OnSessionChange(fn)
}

// SignIn exchanges credentials for a session and installs it.
func (c *Client) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/token?grant_type=password", payload, "session", "sign_in", false)
	if err != nil {
		return nil, err
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gateway sign-in: decode: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, &gateway.Error{Message: "sign-in returned no token"}
	}

	sess := &gateway.Session{Email: resp.User.Email, AccessToken: resp.AccessToken}
	c.session.Replace(sess)
	zap.S().Infow("gateway sign-in", "email", sess.Email)
	return sess, nil
}

// SignOut revokes the session server-side and clears local state.  Local
// state is cleared even when revocation fails; the token may already be
// dead.
func (c *Client) SignOut(ctx context.Context) error {
	if !c.Configured() {
		return gateway.ErrNotConfigured
	}

	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil, "session", "sign_out", false)
	c.session.Replace(nil)
	if err != nil {
		zap.S().Warnw("gateway sign-out failed", "err", err)
	}
	return err
}

/*──────────────────────────── plumbing ─────────────────────────────────────*/

func (c *Client) restURL(collection string) string {
	return c.baseURL + "/rest/v1/" + collection
}

// do performs one round trip and maps non-2xx responses to *gateway.Error.
func (c *Client) do(ctx context.Context, method, rawURL string, payload any, collection, op string, representation bool) ([]byte, error) {
	metrics.GatewayRequestsTotal.WithLabelValues(collection, op).Inc()

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if representation {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.GatewayErrorsTotal.WithLabelValues(collection, op).Inc()
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayErrorsTotal.WithLabelValues(collection, op).Inc()
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.GatewayErrorsTotal.WithLabelValues(collection, op).Inc()
		return nil, decodeError(resp.StatusCode, raw)
	}

	zap.S().Debugw("gateway round trip",
		"collection", collection, "op", op, "status", resp.StatusCode)
	return raw, nil
}

// bearer prefers the signed-in user's token over the anonymous key so writes
// run under the admin's row-security identity.
func (c *Client) bearer() string {
	if s := c.session.Current(); s != nil && s.AccessToken != "" {
		return s.AccessToken
	}
	return c.apiKey
}

// decodeError maps the service's error envelope onto *gateway.Error.  The
// auth endpoints use different field names than the data endpoints.
func decodeError(status int, raw []byte) error {
	var env struct {
		Code             string `json:"code"`
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(raw, &env)

	msg := env.Message
	if msg == "" {
		msg = env.ErrorDescription
	}
	if msg == "" {
		msg = env.Msg
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &gateway.Error{Code: env.Code, Message: msg, Status: status}
}

// firstRow unwraps the representation array returned by writes.
func firstRow(body []byte) (json.RawMessage, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("gateway: empty result set")
	}
	return rows[0], nil
}
