package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/services/product"
	"marketpay/internal/utils/response"
)

type ProductHandler struct {
	service product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

// AddProduct adds a catalog entry.
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	in, err := BindAndValidate[product.AddInput](c)
	if err != nil {
		return nil
	}

	p, err := h.service.Add(c.Context(), *in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, fiber.Map{"product": p})
}

// ListProducts returns the whole catalog.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, fiber.Map{"products": products})
}
