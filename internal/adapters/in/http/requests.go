package http

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ID is a numeric identifier that clients may send either as a JSON number or
// as a numeric string.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*id = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("identifier %s is not an integer", string(data))
	}

	*id = ID(n)
	return nil
}

type userRequest struct {
	ID       ID     `json:"id"`
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// displayName prefers fullName and falls back to name.
func (u userRequest) displayName() string {
	if strings.TrimSpace(u.FullName) != "" {
		return u.FullName
	}
	return u.Name
}

type locationRequest struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type restaurantRequest struct {
	ID           ID     `json:"id"`
	BusinessName string `json:"businessName"`
}

type cartItemRequest struct {
	ID          ID               `json:"id"`
	ProductName string           `json:"productName"`
	Quantity    int              `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Image       string           `json:"image"`
}

// createOrderRequest is the body of POST /api/orders/create. Fields not listed
// here are ignored.
type createOrderRequest struct {
	User        *userRequest       `json:"user"`
	CartItems   []cartItemRequest  `json:"cartItems"`
	Location    *locationRequest   `json:"location"`
	TotalAmount *decimal.Decimal   `json:"totalAmount"`
	Restaurant  *restaurantRequest `json:"restaurant"`
}

func (r createOrderRequest) hasRequiredSections() bool {
	return r.User != nil && r.Location != nil && len(r.CartItems) > 0 && r.Restaurant != nil
}

// toParams maps the request onto command input. Fields the command cannot
// express as absent (coordinates, item prices and total) are checked here.
func (r createOrderRequest) toParams() (commands.CreateOrderParams, error) {
	var missing []error
	if r.Location.Lat == nil {
		missing = append(missing, errs.NewValueIsRequiredError("location.lat"))
	}
	if r.Location.Lng == nil {
		missing = append(missing, errs.NewValueIsRequiredError("location.lng"))
	}
	if r.TotalAmount == nil {
		missing = append(missing, errs.NewValueIsRequiredError("totalAmount"))
	}
	for i, item := range r.CartItems {
		if item.Price == nil {
			missing = append(missing, errs.NewValueIsRequiredError(fmt.Sprintf("cartItems[%d].price", i)))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return commands.CreateOrderParams{}, err
	}

	lines := make([]commands.OrderLine, 0, len(r.CartItems))
	for _, item := range r.CartItems {
		lines = append(lines, commands.OrderLine{
			ProductID:   int64(item.ID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       *item.Price,
			Image:       item.Image,
		})
	}

	return commands.CreateOrderParams{
		CustomerID:     int64(r.User.ID),
		CustomerName:   r.User.displayName(),
		Phone:          r.User.Phone,
		Address:        r.Location.Address,
		Latitude:       *r.Location.Lat,
		Longitude:      *r.Location.Lng,
		RestaurantID:   int64(r.Restaurant.ID),
		RestaurantName: r.Restaurant.BusinessName,
		TotalAmount:    *r.TotalAmount,
		Lines:          lines,
	}, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignRiderRequest struct {
	RiderID   ID     `json:"riderId"`
	RiderName string `json:"riderName"`
}
