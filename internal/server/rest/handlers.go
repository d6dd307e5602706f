package rest

import (
	"strconv"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) index(c *fiber.Ctx) error {
	return c.SendString("products API ready")
}

func (s *Server) register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}

	if _, err := s.users.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "registration successful"})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	token, err := s.users.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(loginResponse{Message: "login successful", Token: token})
}

func (s *Server) createProduct(c *fiber.Ctx, user *models.User) error {
	var req createProductRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}

	p, err := s.products.Create(c.UserContext(), user, req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(productMessageResponse{
		Message: "product created",
		Product: toProductResponse(p),
	})
}

func (s *Server) listProducts(c *fiber.Ctx, user *models.User) error {
	list, err := s.products.List(c.UserContext(), user)
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(productListResponse{Products: out})
}

func (s *Server) getProduct(c *fiber.Ctx, user *models.User) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	p, err := s.products.Get(c.UserContext(), user, id)
	if err != nil {
		return err
	}
	return c.JSON(toProductResponse(p))
}

func (s *Server) updateProduct(c *fiber.Ctx, user *models.User) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}

	p, err := s.products.Update(c.UserContext(), user, id, req.toModel())
	if err != nil {
		return err
	}

	return c.JSON(productMessageResponse{
		Message: "product updated",
		Product: toProductResponse(p),
	})
}

func (s *Server) deleteProduct(c *fiber.Ctx, user *models.User) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := s.products.Delete(c.UserContext(), user, id); err != nil {
		return err
	}
	return c.JSON(messageResponse{Message: "product deleted"})
}

// productID reads the :id route parameter. Values that do not fit an
// int64 cannot name a product, so they are reported as not found.
func productID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, common.ErrorNotFound
	}
	return id, nil
}
