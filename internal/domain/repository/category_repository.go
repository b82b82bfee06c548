package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
