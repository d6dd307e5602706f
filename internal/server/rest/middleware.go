package rest

import (
	"time"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

// scopedHandler is a handler that runs on behalf of an authenticated user.
type scopedHandler func(c *fiber.Ctx, user *models.User) error

// withUser authenticates the request and hands the resolved user to h.
func (s *Server) withUser(h scopedHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.tokens.Authenticate(c.UserContext(), c.Get(common.AuthorizationHeaderName))
		if err != nil {
			return err
		}
		return h(c, user)
	}
}

// requestLogger logs one line per request. Errors are rendered here so the
// logged status matches the response.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()

	if err := c.Next(); err != nil {
		if herr := s.errorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
		"request_id", c.Locals("requestid"),
	)
	return nil
}
