package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id int) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	ListItems(orderID int) ([]*entity.OrderItem, error)
	UpdateStatus(id int, status string) (*entity.Order, error)
}
