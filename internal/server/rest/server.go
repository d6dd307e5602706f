// Package rest exposes the products API as JSON over HTTP using fiber.
package rest

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophproducts/internal/logging"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*models.User, error)
}

type ProductService interface {
	Create(ctx context.Context, owner *models.User, name string, description *string) (*models.Product, error)
	List(ctx context.Context, owner *models.User) ([]*models.Product, error)
	Get(ctx context.Context, owner *models.User, id int64) (*models.Product, error)
	Update(ctx context.Context, owner *models.User, id int64, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, owner *models.User, id int64) error
}

type Server struct {
	address         string
	app             *fiber.App
	users           UserService
	tokens          Authenticator
	products        ProductService
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(a string, l logging.Logger, us UserService, tv Authenticator, ps ProductService, shutdownTimeout time.Duration) *Server {
	s := &Server{
		address:         a,
		users:           us,
		tokens:          tv,
		products:        ps,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "gophproducts",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	s.app.Use(s.requestLogger)
	s.app.Use(recover.New())

	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.index)
	s.app.Post("/register", s.register)
	s.app.Post("/login", s.login)

	s.app.Post("/product", s.withUser(s.createProduct))
	s.app.Get("/products", s.withUser(s.listProducts))
	s.app.Get("/product/:id<int>", s.withUser(s.getProduct))
	s.app.Put("/product/:id<int>", s.withUser(s.updateProduct))
	s.app.Delete("/product/:id<int>", s.withUser(s.deleteProduct))
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.app.ShutdownWithContext(shutdownCtx)
	// Shutdown misses a listener that Serve has not registered yet.
	_ = ln.Close()
	if err != nil {
		return err
	}
	return <-errCh
}
