package queries_test

import (
	"context"
	"testing"
	"time"

	"repuestos/internal/adapters/out/postgres/orderrepo"
	"repuestos/internal/core/application/usecases/queries"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)
	suite.Require().NoError(db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers START 1").Error)

	suite.handler = queries.NewListOrdersQueryHandler(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("ALTER SEQUENCE order_numbers RESTART WITH 1").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListOrdersQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_HidesCancelledByDefault() {
	draft := suite.saveOrder("CUST-001")
	confirmed := suite.saveOrder("CUST-002")
	suite.Require().NoError(confirmed.Confirm())
	suite.updateOrder(confirmed)
	cancelled := suite.saveOrder("CUST-003")
	suite.Require().NoError(cancelled.Cancel(order.ReasonDuplicate, ""))
	suite.updateOrder(cancelled)

	query := queries.NewListOrdersQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Newest order number first.
	suite.Equal(confirmed.ID(), result[0].ID)
	suite.Equal("ORD-000002", result[0].OrderNumber)
	suite.Equal("Confirmed", result[0].Status)
	suite.Equal(draft.ID(), result[1].ID)
	suite.Equal("ORD-000001", result[1].OrderNumber)
	suite.Equal("Draft", result[1].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_IncludeCancelled_ReturnsAll() {
	suite.saveOrder("CUST-001")
	cancelled := suite.saveOrder("CUST-002")
	suite.Require().NoError(cancelled.Cancel(order.ReasonStockIssue, ""))
	suite.updateOrder(cancelled)

	query := queries.NewListOrdersQuery(true)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Cancelled", result[0].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) saveOrder(customerID string) *order.Order {
	saved, err := order.NewOrderFromPayload(kernel.NewUUID(), order.Payload{
		CustomerID:   customerID,
		OrderDate:    "2026-08-01",
		DeliveryDate: "2026-08-05",
		Lines: []order.LinePayload{
			{ProductID: "PROD-OIL", Quantity: "2", UnitPrice: "10.00", DiscountPct: "0"},
		},
	})
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), saved))
	return saved
}

func (suite *ListOrdersQueryHandlerTestSuite) updateOrder(saved *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), saved))
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
