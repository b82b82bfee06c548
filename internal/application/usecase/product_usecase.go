package usecase

import (
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo local.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. StockStatus vacío queda como "In Stock".
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	stockStatus := in.StockStatus
	if stockStatus == "" {
		stockStatus = entity.StockStatusIn
	}
	isFeatured := false
	if in.IsFeatured != nil {
		isFeatured = *in.IsFeatured
	}
	now := time.Now()
	product := &entity.Product{
		Name:               in.Name,
		Price:              *in.Price,
		SellPrice:          in.SellPrice,
		Description:        in.Description,
		ShortDescription:   in.ShortDescription,
		Img:                in.Img,
		CategoryID:         in.CategoryID,
		StockStatus:        stockStatus,
		IsFeatured:         isFeatured,
		DiscountPercentage: in.DiscountPercentage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si el ID no existe.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.SellPrice != nil {
		product.SellPrice = in.SellPrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ShortDescription != nil {
		product.ShortDescription = *in.ShortDescription
	}
	if in.Img != nil {
		product.Img = *in.Img
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.StockStatus != nil {
		product.StockStatus = *in.StockStatus
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.DiscountPercentage != nil {
		product.DiscountPercentage = in.DiscountPercentage
	}
	product.UpdatedAt = time.Now()
	ok, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Devuelve false si el ID no existe.
func (uc *ProductUseCase) Delete(id int) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Price:              p.Price,
		SellPrice:          p.SellPrice,
		Description:        p.Description,
		ShortDescription:   p.ShortDescription,
		Img:                p.Img,
		CategoryID:         p.CategoryID,
		StockStatus:        p.StockStatus,
		IsFeatured:         p.IsFeatured,
		DiscountPercentage: p.DiscountPercentage,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
