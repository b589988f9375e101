package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var echoPathParam = regexp.MustCompile(`:([A-Za-z]+)`)

func loadAPIDocument(t *testing.T) *openapi3.T {
	t.Helper()

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	doc, err := openapi3.NewLoader().LoadFromData([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

func TestAPIDocument_CoversEveryRoute(t *testing.T) {
	doc := loadAPIDocument(t)
	f := newFixture()

	for _, route := range f.echo.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}

		path := echoPathParam.ReplaceAllString(route.Path, "{$1}")
		item := doc.Paths.Find(path)
		if assert.NotNil(t, item, path) {
			assert.NotNil(t, item.GetOperation(route.Method), route.Method+" "+path)
		}
	}
}

func TestAPIDocument_ServedBySwaggerUI(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/orders/create"`)
	assert.Contains(t, rec.Body.String(), `"title": "Food Delivery Orders API"`)
}

type contract struct {
	router routers.Router
	fix    *fixture
}

func newContract(t *testing.T) *contract {
	router, err := legacy.NewRouter(loadAPIDocument(t))
	require.NoError(t, err)
	return &contract{router: router, fix: newFixture()}
}

// exchange validates the request against the document, serves it and then
// validates the response, including its status code.
func (c *contract) exchange(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	ctx := context.Background()

	newRequest := func() *http.Request {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		return req
	}

	req := newRequest()
	route, pathParams, err := c.router.FindRoute(req)
	require.NoError(t, err)

	input := &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options:    &openapi3filter.Options{IncludeResponseStatus: true},
	}
	require.NoError(t, openapi3filter.ValidateRequest(ctx, input))

	rec := httptest.NewRecorder()
	c.fix.echo.ServeHTTP(rec, newRequest())

	responseInput := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: input,
		Status:                 rec.Code,
		Header:                 rec.Header(),
		Options:                &openapi3filter.Options{IncludeResponseStatus: true},
	}
	responseInput.SetBodyBytes(rec.Body.Bytes())
	require.NoError(t, openapi3filter.ValidateResponse(ctx, responseInput))

	return rec
}

func documentedView() queries.OrderView {
	phone := "+1 555 0100"
	riderID := int64(5)
	riderName := "Alex"

	return queries.OrderView{
		ID:              1,
		CustomerID:      7,
		CustomerName:    "Dana",
		PhoneNumber:     &phone,
		DeliveryAddress: "12 Market Street",
		Latitude:        40.7128,
		Longitude:       -74.006,
		RestaurantID:    3,
		RestaurantName:  "Noodle Bar",
		TotalAmount:     "25.50",
		Status:          "pending",
		IsAccepted:      true,
		RiderID:         &riderID,
		RiderName:       &riderName,
		CreatedAt:       time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
		Items: []queries.ItemView{
			{ID: 1, OrderID: 1, ProductID: 11, ProductName: "Ramen", Quantity: 2, Price: "10.00"},
		},
	}
}

func TestContract_CreateOrder(t *testing.T) {
	c := newContract(t)
	c.fix.creator.On("Handle", mock.Anything, mock.Anything).Return(int64(42), nil).Once()

	rec := c.exchange(t, http.MethodPost, "/api/orders/create", validOrderBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = c.exchange(t, http.MethodPost, "/api/orders/create", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContract_OrderLists(t *testing.T) {
	c := newContract(t)
	views := []queries.OrderView{documentedView()}
	c.fix.customer.On("Handle", mock.Anything, mock.Anything).Return(views, nil).Once()
	c.fix.pending.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{}, nil).Once()
	c.fix.rider.On("Handle", mock.Anything, mock.Anything).Return(views, nil).Once()

	assert.Equal(t, http.StatusOK, c.exchange(t, http.MethodGet, "/api/orders/all?customerId=7", "").Code)
	assert.Equal(t, http.StatusOK, c.exchange(t, http.MethodGet, "/api/orders/pending", "").Code)
	assert.Equal(t, http.StatusOK, c.exchange(t, http.MethodGet, "/api/orders/accepted?riderId=5", "").Code)
}

func TestContract_OrderUpdates(t *testing.T) {
	c := newContract(t)
	c.fix.updater.On("Handle", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	c.fix.assigner.On("Handle", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	c.fix.completer.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()
	c.fix.completer.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("order id", int64(999))).Once()

	rec := c.exchange(t, http.MethodPatch, "/api/orders/1/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = c.exchange(t, http.MethodPatch, "/api/orders/1/assign", `{"riderId":5,"riderName":"Alex"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = c.exchange(t, http.MethodPatch, "/api/orders/1/complete", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = c.exchange(t, http.MethodPatch, "/api/orders/999/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContract_Health(t *testing.T) {
	c := newContract(t)

	rec := c.exchange(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
