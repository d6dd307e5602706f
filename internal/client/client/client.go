package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/dmitrijs2005/gophproducts/internal/common"
)

// Client is the API contract the CLI depends on.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	LoggedIn() bool
	CreateProduct(ctx context.Context, name string, description *string) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type APIClient struct {
	http    *fiber.Client
	baseURL string
	timeout time.Duration

	mu    sync.RWMutex
	token string
}

var _ Client = (*APIClient)(nil)

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		http:    &fiber.Client{UserAgent: "gophproducts-cli"},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// agent creates a fresh Agent per call; an Agent must not be shared.
func (c *APIClient) agent(method, url string) *fiber.Agent {
	switch method {
	case fiber.MethodPost:
		return c.http.Post(url)
	case fiber.MethodPut:
		return c.http.Put(url)
	case fiber.MethodDelete:
		return c.http.Delete(url)
	default:
		return c.http.Get(url)
	}
}

func (c *APIClient) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *APIClient) setToken(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
}

func (c *APIClient) Logout() { c.setToken("") }

func (c *APIClient) LoggedIn() bool { return c.accessToken() != "" }

func (c *APIClient) requestTimeout(ctx context.Context) time.Duration {
	t := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); t <= 0 || left < t {
			t = left
		}
	}
	return t
}

// do sends one request and decodes a 2xx body into out, when out is non-nil.
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	a := c.agent(method, c.baseURL+path)
	if tok := c.accessToken(); tok != "" {
		a.Set(fiber.HeaderAuthorization, common.BearerScheme+" "+tok)
	}
	if in != nil {
		a.JSON(in)
	}
	if t := c.requestTimeout(ctx); t > 0 {
		a.Timeout(t)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
	}

	if code >= fiber.StatusBadRequest {
		return apiError(code, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiError(code int, body []byte) error {
	var m messageResponse
	if err := json.Unmarshal(body, &m); err != nil || m.Message == "" {
		m.Message = utils.StatusMessage(code)
	}
	return &APIError{Status: code, Message: m.Message}
}

func productPath(id int64) string {
	return "/product/" + strconv.FormatInt(id, 10)
}

func (c *APIClient) Ping(ctx context.Context) error {
	return c.do(ctx, fiber.MethodGet, "/", nil, nil)
}

func (c *APIClient) Register(ctx context.Context, username string, password []byte) error {
	return c.do(ctx, fiber.MethodPost, "/register", credentials{Username: username, Password: string(password)}, nil)
}

// Login stores the returned token for subsequent scoped calls.
func (c *APIClient) Login(ctx context.Context, username string, password []byte) error {
	var resp loginResponse
	if err := c.do(ctx, fiber.MethodPost, "/login", credentials{Username: username, Password: string(password)}, &resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("login: empty token in response")
	}
	c.setToken(resp.Token)
	return nil
}

func (c *APIClient) CreateProduct(ctx context.Context, name string, description *string) (*Product, error) {
	var resp productMessageResponse
	if err := c.do(ctx, fiber.MethodPost, "/product", newProduct{Name: name, Description: description}, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *APIClient) ListProducts(ctx context.Context) ([]Product, error) {
	var resp productListResponse
	if err := c.do(ctx, fiber.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *APIClient) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := c.do(ctx, fiber.MethodGet, productPath(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *APIClient) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error) {
	var resp productMessageResponse
	if err := c.do(ctx, fiber.MethodPut, productPath(id), patch.body(), &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *APIClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, fiber.MethodDelete, productPath(id), nil, nil)
}
