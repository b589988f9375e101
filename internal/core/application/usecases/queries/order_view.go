// Package queries contains read-only operations over orders. Handlers query the
// database directly and return flat views shaped for clients; they never load
// aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order row as returned to clients, with its items attached.
// Amounts are rendered with two fraction digits.
type OrderView struct {
	ID              int64      `json:"id"`
	CustomerID      int64      `json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	PhoneNumber     *string    `json:"phone_number"`
	DeliveryAddress string     `json:"delivery_address"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	RestaurantID    int64      `json:"restaurant_id"`
	RestaurantName  string     `json:"restaurant_name"`
	TotalAmount     string     `json:"total_amount"`
	Status          string     `json:"status"`
	IsAccepted      bool       `json:"is_accepted"`
	RiderID         *int64     `json:"rider_id"`
	RiderName       *string    `json:"rider_name"`
	CreatedAt       time.Time  `json:"created_at"`
	Items           []ItemView `json:"items"`
}

// ItemView is one order line.
type ItemView struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       string  `json:"price"`
	Image       *string `json:"image"`
}

const selectOrders = `
	SELECT
		id,
		customer_id,
		customer_name,
		phone_number,
		delivery_address,
		latitude,
		longitude,
		restaurant_id,
		restaurant_name,
		total_amount,
		status,
		is_accepted,
		rider_id,
		rider_name,
		created_at
	FROM orders
`

// loadOrders runs the order select with the given WHERE/ORDER BY tail, then
// fetches the items of every returned order in one batched query. The result
// is never nil.
func loadOrders(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrders+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view      OrderView
			phone     sql.NullString
			riderID   sql.NullInt64
			riderName sql.NullString
			total     decimal.Decimal
		)

		err = rows.Scan(
			&view.ID,
			&view.CustomerID,
			&view.CustomerName,
			&phone,
			&view.DeliveryAddress,
			&view.Latitude,
			&view.Longitude,
			&view.RestaurantID,
			&view.RestaurantName,
			&total,
			&view.Status,
			&view.IsAccepted,
			&riderID,
			&riderName,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		view.PhoneNumber = nullableString(phone)
		view.RiderID = nullableInt64(riderID)
		view.RiderName = nullableString(riderName)
		view.TotalAmount = total.StringFixed(2)
		view.Items = make([]ItemView, 0)
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			quantity,
			price,
			image
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  ItemView
			price decimal.Decimal
			image sql.NullString
		)

		err = rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&price,
			&image,
		)
		if err != nil {
			return err
		}

		item.Price = price.StringFixed(2)
		item.Image = nullableString(image)

		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullableInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}
