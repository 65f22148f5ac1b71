// Package product manages the in-memory catalog of purchasable items.
package product

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/store"
)

// Service is the product catalog surface.
type Service interface {
	Add(ctx context.Context, in AddInput) (*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

// AddInput creates a catalog entry. Price is in major currency units
// and converted to minor units once.
type AddInput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images"`
}

type service struct {
	catalog store.ProductCatalog
}

// NewService creates a catalog service over the given store.
func NewService(catalog store.ProductCatalog) Service {
	return &service{catalog: catalog}
}

func (s *service) Add(ctx context.Context, in AddInput) (*models.Product, error) {
	if in.Name == "" || in.Price <= 0 {
		return nil, apperr.Validation("name and a positive price are required")
	}

	id := in.ID
	if id == "" {
		id = "prod_" + strings.Split(uuid.NewString(), "-")[0]
	}

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}

	p := &models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       int64(math.Round(in.Price * 100)),
		Images:      images,
	}
	if err := s.catalog.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.catalog.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("product %s not found", id)
	}
	return p, err
}

func (s *service) List(ctx context.Context) ([]*models.Product, error) {
	return s.catalog.List(ctx)
}

// SeedDemo loads the two demonstration products.
func SeedDemo(ctx context.Context, catalog store.ProductCatalog) error {
	demo := []*models.Product{
		{
			ID:          "prod_001",
			Name:        "Produto Premium",
			Description: "Um produto de alta qualidade",
			Price:       9900,
			Images:      []string{"https://exemplo.com/imagem.jpg"},
		},
		{
			ID:          "prod_002",
			Name:        "Serviço Básico",
			Description: "Um serviço essencial",
			Price:       4990,
			Images:      []string{},
		},
	}
	for _, p := range demo {
		if err := catalog.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
