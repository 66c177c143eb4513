package http

import (
	"time"

	"sales/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request bodies. Identifiers arrive as strings so that a malformed value is
// reported as a field error instead of a decoding failure.
type (
	NewOrder struct {
		CustomerID string `json:"customerId"`
	}

	NewItem struct {
		ProductID   string          `json:"productId"`
		ProductName string          `json:"productName"`
		Quantity    int             `json:"quantity"`
		UnitPrice   decimal.Decimal `json:"unitPrice"`
	}

	ItemUnits struct {
		Quantity int `json:"quantity"`
	}

	VoucherCode struct {
		Code string `json:"code"`
	}

	StatusTransition struct {
		Transition string `json:"transition"`
	}
)

// Response bodies.
type (
	CreatedOrder struct {
		ID uuid.UUID `json:"id"`
	}

	VoucherResult struct {
		Applied bool     `json:"applied"`
		Reasons []string `json:"reasons"`
	}

	OrderStatus struct {
		Status string `json:"status"`
	}

	OrderItem struct {
		ProductID   uuid.UUID       `json:"productId"`
		ProductName string          `json:"productName"`
		Quantity    int             `json:"quantity"`
		UnitPrice   decimal.Decimal `json:"unitPrice"`
		Subtotal    decimal.Decimal `json:"subtotal"`
	}

	Order struct {
		ID          uuid.UUID       `json:"id"`
		CustomerID  uuid.UUID       `json:"customerId"`
		Status      string          `json:"status"`
		Total       decimal.Decimal `json:"total"`
		Discount    decimal.Decimal `json:"discount"`
		VoucherUsed bool            `json:"voucherUsed"`
		VoucherCode *string         `json:"voucherCode,omitempty"`
		CreatedAt   time.Time       `json:"createdAt"`
		Items       []OrderItem     `json:"items"`
	}

	OrderSummary struct {
		ID        uuid.UUID       `json:"id"`
		Status    string          `json:"status"`
		Total     decimal.Decimal `json:"total"`
		ItemCount int             `json:"itemCount"`
		CreatedAt time.Time       `json:"createdAt"`
	}

	Error struct {
		Code    int      `json:"code"`
		Message string   `json:"message"`
		Reasons []string `json:"reasons,omitempty"`
	}
)

func orderFromView(view queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItem{
			ProductID:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}

	return Order{
		ID:          view.ID.Bytes(),
		CustomerID:  view.CustomerID.Bytes(),
		Status:      view.Status,
		Total:       view.Total,
		Discount:    view.Discount,
		VoucherUsed: view.VoucherUsed,
		VoucherCode: view.VoucherCode,
		CreatedAt:   view.CreatedAt,
		Items:       items,
	}
}
