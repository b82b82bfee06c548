package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// OrderTxRunner ejecuta un callback con repos atados a una transacción.
// Lo implementa el TxRunner de postgres.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de un pedido.
// Lo implementa el generador Maroto de infraestructura.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order, items []*entity.OrderItem, products map[int]*entity.Product) ([]byte, error)
}

// OrderUseCase casos de uso para pedidos: creación atómica (pedido + líneas),
// consulta con líneas, cambio de estado y comprobante PDF.
type OrderUseCase struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	txRunner    OrderTxRunner
	receipts    ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	txRunner OrderTxRunner,
	receipts ReceiptGenerator,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, productRepo: productRepo, txRunner: txRunner, receipts: receipts}
}

// Create crea el pedido y todas sus líneas dentro de una transacción:
// o se persiste todo o no se persiste nada.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	now := time.Now()
	order := &entity.Order{
		UserID:          in.UserID,
		Status:          status,
		Total:           *in.Total,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.ProductRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, itemIn := range in.Items {
			item := &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: *itemIn.ProductID,
				Quantity:  *itemIn.Quantity,
				Price:     *itemIn.Price,
				Subtotal:  *itemIn.Subtotal,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// GetByID obtiene un pedido con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.repo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista pedidos con paginación (sin líneas, para el listado).
func (uc *OrderUseCase) List(limit, offset int) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return items, nil
}

// UpdateStatus cambia el estado del pedido. ErrInvalidInput si el estado no
// pertenece al enum; (nil, nil) si el ID no existe.
func (uc *OrderUseCase) UpdateStatus(id int, status string) (*dto.OrderResponse, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order, nil), nil
}

// Receipt genera el comprobante PDF del pedido. Devuelve (nil, nil) si el
// pedido no existe.
func (uc *OrderUseCase) Receipt(ctx context.Context, id int) ([]byte, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.repo.ListItems(id)
	if err != nil {
		return nil, err
	}

	// Nombres de producto para las líneas del comprobante; un producto
	// borrado del catálogo no bloquea el PDF, solo pierde su nombre.
	products := make(map[int]*entity.Product, len(items))
	for _, it := range items {
		if _, ok := products[it.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products[it.ProductID] = p
		}
	}
	return uc.receipts.GenerateOrderReceipt(ctx, order, items, products)
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Subtotal,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		})
	}
	return resp
}
