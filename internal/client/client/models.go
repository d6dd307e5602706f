package client

// Product is a product record as returned by the API.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ProductPatch describes a partial update. Nil fields are left untouched;
// ClearDescription sends an explicit null and wins over Description.
type ProductPatch struct {
	Name             *string
	Description      *string
	ClearDescription bool
}

func (p ProductPatch) body() map[string]any {
	b := map[string]any{}
	if p.Name != nil {
		b["name"] = *p.Name
	}
	switch {
	case p.ClearDescription:
		b["description"] = nil
	case p.Description != nil:
		b["description"] = *p.Description
	}
	return b
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type newProduct struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type productMessageResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

type productListResponse struct {
	Products []Product `json:"products"`
}
