package rest

import (
	"errors"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/gofiber/fiber/v2"
)

var errBadBody = fiber.NewError(fiber.StatusBadRequest, "invalid request body")

// toHTTPError maps service errors to a status code and the message shown
// to the client. Unknown errors become a bare 500.
func toHTTPError(err error) *fiber.Error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	switch {
	case errors.Is(err, common.ErrorMissingField):
		return fiber.NewError(fiber.StatusBadRequest, common.ErrorMissingField.Error())
	case errors.Is(err, common.ErrorDuplicateHandle):
		return fiber.NewError(fiber.StatusConflict, common.ErrorDuplicateHandle.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrMissingToken):
		return fiber.NewError(fiber.StatusUnauthorized, common.ErrMissingToken.Error())
	case errors.Is(err, common.ErrTokenExpired):
		return fiber.NewError(fiber.StatusUnauthorized, common.ErrTokenExpired.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return fiber.NewError(fiber.StatusUnauthorized, common.ErrInvalidToken.Error())
	case errors.Is(err, common.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, common.ErrUserNotFound.Error())
	case errors.Is(err, common.ErrorNotFound):
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	he := toHTTPError(err)
	if he.Code >= fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed", "error", err, "path", c.Path())
	}
	return c.Status(he.Code).JSON(messageResponse{Message: he.Message})
}
