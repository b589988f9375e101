// Package orderrepo provides the gorm models and the repository for order persistence.
// It converts the Order aggregate into the orders and order_items tables and back.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents a row of the orders table.
// Items cascade on delete; no caller-facing operation deletes orders.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64           `gorm:"not null;index"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	PhoneNumber     *string         `gorm:"type:varchar(20)"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	Latitude        float64         `gorm:"type:double precision;not null"`
	Longitude       float64         `gorm:"type:double precision;not null"`
	RestaurantID    int64           `gorm:"not null"`
	RestaurantName  string          `gorm:"type:varchar(255);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"type:varchar(16);not null;default:'pending';index;check:chk_orders_status,status IN ('pending','canceled','completed')"` //nolint:lll
	IsAccepted      bool            `gorm:"not null;default:false"`
	RiderID         *int64          `gorm:"index"`
	RiderName       *string         `gorm:"type:varchar(255)"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a row of the order_items table.
type OrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       *string         `gorm:"type:text"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a new order aggregate to its database representation.
// Acceptance columns are left at their initial values: not accepted, no rider.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Decimal(),
			Image:       optional(item.Image()),
		})
	}

	dto := OrderDTO{
		ID:              aggregate.ID(),
		CustomerID:      aggregate.Customer().ID(),
		CustomerName:    aggregate.Customer().Name(),
		PhoneNumber:     optional(aggregate.Customer().Phone()),
		DeliveryAddress: aggregate.Location().Address(),
		Latitude:        aggregate.Location().Latitude(),
		Longitude:       aggregate.Location().Longitude(),
		RestaurantID:    aggregate.Restaurant().ID(),
		RestaurantName:  aggregate.Restaurant().Name(),
		TotalAmount:     aggregate.Total().Decimal(),
		Status:          aggregate.Status().String(),
		IsAccepted:      aggregate.IsAccepted(),
		Items:           items,
	}

	if rider := aggregate.Rider(); rider != nil {
		id, name := rider.ID(), rider.Name()
		dto.RiderID = &id
		dto.RiderName = &name
	}

	return dto
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
