package queries

import (
	"context"
	"database/sql"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its lines with two raw statements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		resp       GetOrderQueryResponse
		customerID uuid.UUID
		status     int
		code       sql.NullString
	)
	row := db.Raw(`
		SELECT
			o.customer_id,
			o.status,
			o.total,
			o.discount,
			o.voucher_used,
			v.code,
			o.created_at
		FROM orders o
		LEFT JOIN vouchers v ON v.id = o.voucher_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&customerID, &status, &resp.Total, &resp.Discount, &resp.VoucherUsed, &code, &resp.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	cid, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = query.OrderID()
	resp.CustomerID = cid
	resp.Status = order.Status(status).String()
	if code.Valid {
		resp.VoucherCode = &code.String
	}

	resp.Items, err = h.items(db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	rows, err := db.Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItem, 0)
	for rows.Next() {
		var (
			item      GetOrderQueryItem
			productID uuid.UUID
		)
		if err = rows.Scan(&productID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = pid
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
