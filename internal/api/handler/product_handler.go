package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/metrics"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// ProductHandler handles HTTP requests for the admin product controls.
type ProductHandler struct {
	service ports.ProductControl
}

func NewProductHandler(service ports.ProductControl) *ProductHandler {
	return &ProductHandler{service: service}
}

// Add handles POST /api/admin/products. A request repeating an earlier
// Idempotency-Key is answered with 200 and the product it created.
func (h *ProductHandler) Add(c echo.Context) error {
	raw, err := readObject(c)
	if err != nil {
		return err
	}

	var details *ports.ProductDetails
	if raw != nil {
		var req addProductRequest
		if err := decodeObject(raw, &req); err != nil {
			return err
		}
		details = req.toDetails()
	}

	res, err := h.service.AddProduct(c.Request().Context(), details, c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
		metrics.ProductsReplayedTotal.Inc()
	} else {
		metrics.ProductsCreatedTotal.Inc()
	}

	return c.JSON(status, messageResponse{Message: res.Message, Data: toProductResponse(res.Product)})
}

// Update handles PATCH /api/admin/products/:id. name and price replace the
// stored values; quantity is added to the current stock.
func (h *ProductHandler) Update(c echo.Context) error {
	raw, err := readObject(c)
	if err != nil {
		return err
	}

	var patch *ports.ProductPatch
	if raw != nil {
		var req updateProductRequest
		if err := decodeObject(raw, &req); err != nil {
			return err
		}
		patch = req.toPatch()
	}

	res, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}

	metrics.ProductsUpdatedTotal.Inc()
	if patch != nil && patch.Quantity != nil {
		metrics.ObserveStockDelta(*patch.Quantity)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: res.Message, Data: toProductResponse(res.Product)})
}

// Get handles GET /api/admin/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	res, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: res.Message, Data: toProductResponse(res.Product)})
}
