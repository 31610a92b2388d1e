package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// messageResponse is the success envelope: {"message": ..., "data": ...}.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// tokenResponse is returned by the login endpoints.
type tokenResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	Account *accountResponse `json:"account"`
}

// --- Request types ---

type addProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type passwordsRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type changePasswordRequest struct {
	Passwords *passwordsRequest `json:"passwords"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// --- Response types ---

type productResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	AddedOn   string  `json:"addedOn,omitempty"`
	UpdatedOn string  `json:"updatedOn,omitempty"`
}

type accountResponse struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phoneNo,omitempty"`
	Address string `json:"address,omitempty"`
}

func toProductResponse(p *domain.Product) *productResponse {
	return &productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		AddedOn:   p.AddedOn,
		UpdatedOn: p.UpdatedOn,
	}
}

func toAccountResponse(a *domain.Account) *accountResponse {
	return &accountResponse{
		ID:      a.ID,
		Role:    string(a.Role),
		Name:    a.Name,
		Email:   a.Email,
		PhoneNo: a.PhoneNo,
		Address: a.Address,
	}
}

func (r addProductRequest) toDetails() *ports.ProductDetails {
	return &ports.ProductDetails{Name: r.Name, Price: r.Price, Quantity: r.Quantity}
}

func (r updateProductRequest) toPatch() *ports.ProductPatch {
	return &ports.ProductPatch{Name: r.Name, Price: r.Price, Quantity: r.Quantity}
}

// readObject returns the request body when it is a JSON object and nil for
// anything else (empty body, null, arrays, scalars).
func readObject(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, nil
	}
	return body, nil
}

// decodeObject unmarshals an object body. A field of the wrong type is a
// schema violation; a syntactically broken body is invalid input.
func decodeObject(raw []byte, dst any) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return domain.Wrap(domain.KindSchemaViolation, fmt.Sprintf("%s must be of type %s", te.Field, te.Type), err)
	}
	return domain.Wrap(domain.KindInvalidInput, "Product details are necessary!", err)
}
