package rest

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/gophproducts/internal/cryptox"
	"github.com/dmitrijs2005/gophproducts/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate is applied to registrations only; login failures are always 401.
func (r credentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 80)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, cryptox.MaxPasswordLen)),
	)
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r createProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

// optionalString tells an absent field apart from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type updateProductRequest struct {
	Name        *string        `json:"name"`
	Description optionalString `json:"description"`
}

func (r updateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

func (r updateProductRequest) toModel() models.ProductUpdate {
	return models.ProductUpdate{
		Name:           r.Name,
		Description:    r.Description.Value,
		DescriptionSet: r.Description.Set,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type productMessageResponse struct {
	Message string          `json:"message"`
	Product productResponse `json:"product"`
}

type productListResponse struct {
	Products []productResponse `json:"products"`
}

func toProductResponse(p *models.Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name, Description: p.Description}
}

// decodeBody parses a JSON body regardless of the declared content type.
func decodeBody(c *fiber.Ctx, v any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return errBadBody
	}
	return nil
}

func validationError(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
