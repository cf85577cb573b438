// Package catalog is the gateway to the remote store API: products,
// categories, users, carts, and login. Reads come back already localized;
// writes are accepted and echoed by the remote but never durably applied,
// so callers must treat their confirmations as simulated.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JeanCaicedo/FakeStore/internal/localize"
	"github.com/JeanCaicedo/FakeStore/pkg/config"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

// Demo login shortcut: this credential pair never reaches the network and
// always yields the fixed token below. Intentional test-account hack, gated
// by FAKESTORE_DEMO_BYPASS.
const (
	demoUsername = "jean"
	demoPassword = "jean123"
	demoToken    = "fake_token_jean_123"
)

var errLoggerRequired = errors.New("catalog logger is required")

// Client wraps the remote store API with centralized logging, credential
// redaction, and error mapping. No caching, no retries; failures surface
// immediately to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	demoBypass bool
	logger     *logger.Logger
}

// NewClient validates the configuration and builds the gateway.
func NewClient(cfg config.CatalogConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		demoBypass: cfg.DemoBypass,
		logger:     logg,
	}, nil
}

// DemoUsername exposes the bypass account name for callers that special-case
// it (login resolves its profile locally).
func (c *Client) DemoUsername() string {
	if c == nil || !c.demoBypass {
		return ""
	}
	return demoUsername
}

// ListProducts returns the catalog, localized, in the requested order.
// A limit of zero means no limit.
func (c *Client) ListProducts(ctx context.Context, limit int, sort Sort) ([]types.Product, error) {
	query := url.Values{"sort": {string(normalizeSort(sort))}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var raws []localize.RawProduct
	if err := c.get(ctx, "list_products", "/products", query, &raws); err != nil {
		return nil, err
	}
	return localize.TransformProducts(raws), nil
}

// GetProduct returns one localized product, or NotFound when the remote has
// no such id. The remote answers unknown ids with an empty 200 body, so both
// shapes map to NotFound.
func (c *Client) GetProduct(ctx context.Context, id int) (types.Product, error) {
	var raw *localize.RawProduct
	err := c.get(ctx, "get_product", "/products/"+strconv.Itoa(id), nil, &raw)
	if err != nil {
		return types.Product{}, err
	}
	if raw == nil || raw.ID == 0 {
		return types.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	return localize.TransformProduct(*raw), nil
}

// ListCategories returns the remote category list with localized labels.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var raw []string
	if err := c.get(ctx, "list_categories", "/products/categories", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, cat := range raw {
		out = append(out, localize.TranslateCategory(cat))
	}
	return out, nil
}

// ListProductsByCategory filters the catalog by the remote (untranslated)
// category name.
func (c *Client) ListProductsByCategory(ctx context.Context, category string, sort Sort) ([]types.Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	query := url.Values{"sort": {string(normalizeSort(sort))}}
	path := "/products/category/" + url.PathEscape(category)

	var raws []localize.RawProduct
	if err := c.get(ctx, "list_products_by_category", path, query, &raws); err != nil {
		return nil, err
	}
	return localize.TransformProducts(raws), nil
}

// Login exchanges credentials for a bearer token. The demo account
// short-circuits without a network call; every other rejection from the
// remote maps to an authentication error.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	if c.demoBypass && username == demoUsername && password == demoPassword {
		c.log(ctx, "response", "login", map[string]any{"username": username, "demo_bypass": true})
		return TokenResponse{Token: demoToken}, nil
	}

	var token TokenResponse
	err := c.send(ctx, "login", http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &token)
	if err != nil {
		typed := pkgerrors.As(err)
		if typed != nil && typed.Code() != pkgerrors.CodeNetwork {
			return TokenResponse{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "login rejected")
		}
		return TokenResponse{}, err
	}
	if token.Token == "" {
		return TokenResponse{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login rejected")
	}
	return token, nil
}

// Register submits a new user. The remote echoes an id back without storing
// anything.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (types.User, error) {
	var user types.User
	if err := c.send(ctx, "register", http.MethodPost, "/users", payload, &user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// GetUser fetches a user record by id.
func (c *Client) GetUser(ctx context.Context, id int) (types.User, error) {
	var user types.User
	if err := c.get(ctx, "get_user", "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return types.User{}, err
	}
	if user.ID == 0 {
		return types.User{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}

// ListUsers returns every remote user record. Login uses this to resolve a
// profile for the signed-in username, since the remote's login reply carries
// only a token.
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := c.get(ctx, "list_users", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetCartForUser fetches the remote cart records for a user. Absence is not
// an error worth failing a login over; callers treat this as best effort.
func (c *Client) GetCartForUser(ctx context.Context, userID int) ([]RemoteCart, error) {
	var carts []RemoteCart
	if err := c.get(ctx, "get_cart_for_user", "/carts/user/"+strconv.Itoa(userID), nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// CreateCart submits a cart to the remote, which echoes it with an id.
func (c *Client) CreateCart(ctx context.Context, cart RemoteCart) (RemoteCart, error) {
	var created RemoteCart
	if err := c.send(ctx, "create_cart", http.MethodPost, "/carts", cart, &created); err != nil {
		return RemoteCart{}, err
	}
	return created, nil
}

// CreateProduct submits a new catalog entry. Simulated: the echoed record
// never appears in subsequent listings.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (localize.RawProduct, error) {
	var echoed localize.RawProduct
	if err := c.send(ctx, "create_product", http.MethodPost, "/products", input, &echoed); err != nil {
		return localize.RawProduct{}, err
	}
	return echoed, nil
}

// UpdateProduct replaces a catalog entry. Simulated echo, like CreateProduct.
func (c *Client) UpdateProduct(ctx context.Context, id int, input ProductInput) (localize.RawProduct, error) {
	var echoed localize.RawProduct
	if err := c.send(ctx, "update_product", http.MethodPut, "/products/"+strconv.Itoa(id), input, &echoed); err != nil {
		return localize.RawProduct{}, err
	}
	return echoed, nil
}

// DeleteProduct removes a catalog entry. Simulated echo of the deleted record.
func (c *Client) DeleteProduct(ctx context.Context, id int) (localize.RawProduct, error) {
	var echoed localize.RawProduct
	if err := c.send(ctx, "delete_product", http.MethodDelete, "/products/"+strconv.Itoa(id), nil, &echoed); err != nil {
		return localize.RawProduct{}, err
	}
	return echoed, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	c.log(ctx, "request", op, map[string]any{"path": path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	return c.do(ctx, op, req, dest)
}

func (c *Client) send(ctx context.Context, op, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	c.log(ctx, "request", op, map[string]any{"path": path, "method": method})

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(ctx, op, req, dest)
}

func (c *Client) do(ctx context.Context, op string, req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, fmt.Sprintf("%s: remote unreachable", op))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, fmt.Sprintf("%s: read response", op))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log(ctx, "error", op, map[string]any{"status": resp.StatusCode, "error": fmt.Sprintf("remote returned %d", resp.StatusCode)})
		code := domainCodeForStatus(resp.StatusCode)
		return pkgerrors.New(code, fmt.Sprintf("%s: remote returned %d", op, resp.StatusCode))
	}

	c.log(ctx, "response", op, map[string]any{"status": resp.StatusCode})

	if dest == nil {
		return nil
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		// The remote answers some unknown ids with an empty 200; leave
		// dest at its zero value and let the caller decide.
		return nil
	}

	if err := json.Unmarshal(trimmed, dest); err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, fmt.Sprintf("%s: malformed response body", op))
	}
	return nil
}

func domainCodeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return pkgerrors.CodeUnauthorized
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	default:
		return pkgerrors.CodeNetwork
	}
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("catalog %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("catalog %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"password", "token", "secret", "email", "phone"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}
