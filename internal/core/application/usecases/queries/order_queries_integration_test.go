package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/gormstore/gormstoretest"
	"fooddelivery/internal/adapters/out/gormstore/orderrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/order/ordertest"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	pg        *gormstoretest.Postgres
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	pg, err := gormstoretest.StartPostgres(context.Background(), gormstoretest.SQLMigrations)
	suite.Require().NoError(err)
	suite.pg = pg
	suite.db = pg.DB
	suite.orderRepo = orderrepo.NewGormOrderRepository(pg.DB)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *OrderQueriesTestSuite) add(b *ordertest.Builder) int64 {
	o := b.Build(suite.T())
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o.ID()
}

func (suite *OrderQueriesTestSuite) backdate(id int64, age time.Duration) {
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", id).
		Update("created_at", time.Now().Add(-age)).Error)
}

func (suite *OrderQueriesTestSuite) assign(id, riderID int64, name string) {
	rider, err := order.NewRider(riderID, name)
	suite.Require().NoError(err)
	rows, err := suite.orderRepo.AssignRider(context.Background(), id, rider)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1), rows)
}

func (suite *OrderQueriesTestSuite) customerOrders(customerID int64) []queries.OrderView {
	q, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)
	views, err := queries.NewGetCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), q)
	suite.Require().NoError(err)
	return views
}

func (suite *OrderQueriesTestSuite) pendingOrders() []queries.OrderView {
	views, err := queries.NewGetPendingOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetPendingOrdersQuery())
	suite.Require().NoError(err)
	return views
}

func (suite *OrderQueriesTestSuite) riderOrders(riderID int64) []queries.OrderView {
	q, err := queries.NewGetRiderOrdersQuery(riderID)
	suite.Require().NoError(err)
	views, err := queries.NewGetRiderOrdersQueryHandler(suite.db).Handle(context.Background(), q)
	suite.Require().NoError(err)
	return views
}

func (suite *OrderQueriesTestSuite) TestCustomerOrders_UnknownCustomerReturnsEmptySlice() {
	views := suite.customerOrders(12345)

	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *OrderQueriesTestSuite) TestCustomerOrders_RoundTripsAmountsAndItems() {
	id := suite.add(ordertest.New())

	views := suite.customerOrders(7)

	suite.Require().Len(views, 1)
	v := views[0]
	suite.Equal(id, v.ID)
	suite.Equal("25.50", v.TotalAmount)
	suite.Equal("pending", v.Status)
	suite.False(v.IsAccepted)
	suite.Nil(v.RiderID)
	suite.Nil(v.RiderName)
	suite.Require().NotNil(v.PhoneNumber)
	suite.Equal("+1 555 0100", *v.PhoneNumber)
	suite.Equal("12 Market Street", v.DeliveryAddress)
	suite.InDelta(40.7128, v.Latitude, 1e-9)
	suite.Equal("Noodle Bar", v.RestaurantName)

	suite.Require().Len(v.Items, 2)
	suite.Equal("Ramen", v.Items[0].ProductName)
	suite.Equal(2, v.Items[0].Quantity)
	suite.Equal("10.00", v.Items[0].Price)
	suite.Nil(v.Items[0].Image)
	suite.Equal("Tea", v.Items[1].ProductName)
	suite.Equal(1, v.Items[1].Quantity)
	suite.Equal("5.50", v.Items[1].Price)
	suite.Require().NotNil(v.Items[1].Image)
	suite.Equal("tea.png", *v.Items[1].Image)
	for _, item := range v.Items {
		suite.Equal(id, item.OrderID)
	}
}

func (suite *OrderQueriesTestSuite) TestCustomerOrders_NewestFirstAndScopedToCustomer() {
	older := suite.add(ordertest.New())
	newer := suite.add(ordertest.New())
	suite.add(ordertest.New().WithCustomer(8))
	suite.backdate(older, time.Hour)

	views := suite.customerOrders(7)

	suite.Require().Len(views, 2)
	suite.Equal(newer, views[0].ID)
	suite.Equal(older, views[1].ID)
	for _, v := range views {
		suite.Len(v.Items, 2, "items must not leak between orders")
	}
}

func (suite *OrderQueriesTestSuite) TestPendingOrders_ExcludesAssignedAndNonPending() {
	open := suite.add(ordertest.New())
	accepted := suite.add(ordertest.New())
	canceled := suite.add(ordertest.New())

	suite.assign(accepted, 1, "Alex")
	_, err := suite.orderRepo.UpdateStatus(context.Background(), canceled, order.Canceled)
	suite.Require().NoError(err)

	views := suite.pendingOrders()

	suite.Require().Len(views, 1)
	suite.Equal(open, views[0].ID)
	suite.Len(views[0].Items, 2)
}

func (suite *OrderQueriesTestSuite) TestPendingOrders_OldestFirst() {
	newer := suite.add(ordertest.New())
	older := suite.add(ordertest.New())
	suite.backdate(older, time.Hour)

	views := suite.pendingOrders()

	suite.Require().Len(views, 2)
	suite.Equal(older, views[0].ID)
	suite.Equal(newer, views[1].ID)
}

func (suite *OrderQueriesTestSuite) TestPendingOrders_EmptyStore() {
	views := suite.pendingOrders()

	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *OrderQueriesTestSuite) TestRiderOrders_AcceptedOrderVisibleToRider() {
	id := suite.add(ordertest.New())
	suite.add(ordertest.New())
	suite.assign(id, 1, "Alex")

	views := suite.riderOrders(1)

	suite.Require().Len(views, 1)
	suite.Equal(id, views[0].ID)
	suite.True(views[0].IsAccepted)
	suite.Require().NotNil(views[0].RiderID)
	suite.Equal(int64(1), *views[0].RiderID)
	suite.Require().NotNil(views[0].RiderName)
	suite.Equal("Alex", *views[0].RiderName)
	suite.Len(views[0].Items, 2)

	for _, pending := range suite.pendingOrders() {
		suite.NotEqual(id, pending.ID)
	}
	suite.Empty(suite.riderOrders(2))
}

func (suite *OrderQueriesTestSuite) TestRiderOrders_IncludesCompleted() {
	id := suite.add(ordertest.New())
	suite.assign(id, 1, "Alex")
	_, err := suite.orderRepo.MarkCompleted(context.Background(), id)
	suite.Require().NoError(err)

	views := suite.riderOrders(1)

	suite.Require().Len(views, 1)
	suite.Equal("completed", views[0].Status)
}

func (suite *OrderQueriesTestSuite) TestRiderOrders_ReassignmentMovesOrder() {
	id := suite.add(ordertest.New())
	suite.assign(id, 1, "Alex")
	suite.assign(id, 2, "Sam")

	suite.Empty(suite.riderOrders(1))
	suite.Len(suite.riderOrders(2), 1)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
