// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders live in the orders table, their lines in order_items, and the applied voucher
// is referenced through orders.voucher_id.
package orderrepo

import (
	"time"

	"sales/internal/adapters/out/postgres/voucherrepo"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer for listings and by status and creation time for the
// stale draft sweep.
type OrderDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal         `gorm:"type:numeric;not null"`
	Discount    decimal.Decimal         `gorm:"type:numeric;not null"`
	VoucherUsed bool                    `gorm:"not null"`
	VoucherID   *uuid.UUID              `gorm:"type:uuid;index"`
	Voucher     *voucherrepo.VoucherDTO `gorm:"foreignKey:VoucherID"`
	Status      int                     `gorm:"type:smallint;not null;index:idx_orders_status_created_at,priority:1"`
	CreatedAt   time.Time               `gorm:"not null;index:idx_orders_status_created_at,priority:2"`
	Items       []OrderItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the insertion order
// of the aggregate's item list.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var voucherID *uuid.UUID
	if v := aggregate.Voucher(); v != nil {
		raw := v.ID().Bytes()
		voucherID = &raw
	}

	items := make([]OrderItemDTO, 0, aggregate.ItemCount())
	for pos, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    pos,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			CreatedAt:   item.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		CustomerID:  aggregate.CustomerID().Bytes(),
		Total:       aggregate.Total(),
		Discount:    aggregate.Discount(),
		VoucherUsed: aggregate.VoucherUsed(),
		VoucherID:   voucherID,
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		Items:       items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Items must already be
// sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var applied *voucher.Voucher
	if dto.Voucher != nil {
		applied, err = voucherrepo.ToDomain(*dto.Voucher)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:          id,
		CustomerID:  customerID,
		Total:       dto.Total,
		Discount:    dto.Discount,
		VoucherUsed: dto.VoucherUsed,
		Voucher:     applied,
		Status:      order.Status(dto.Status),
		CreatedAt:   dto.CreatedAt,
		Items:       items,
	})
}

func itemToDomain(orderID kernel.UUID, dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, dto.ProductName, dto.Quantity, dto.UnitPrice, dto.CreatedAt)
}
