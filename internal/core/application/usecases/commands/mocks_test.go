package commands_test

import (
	"context"
	"testing"
	"time"

	"repuestos/internal/core/application/usecases/commands"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"
	"repuestos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func validPayload() order.Payload {
	return order.Payload{
		CustomerID:   "C1",
		OrderDate:    "2024-01-05",
		DeliveryDate: "2024-01-10",
		Lines: []order.LinePayload{
			{ProductID: "P1", Quantity: "2", UnitPrice: "25.00", DiscountPct: "0"},
		},
	}
}

func savedDraft(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	orderDate, err := time.Parse(order.DateLayout, "2024-01-05")
	require.NoError(t, err)
	deliveryDate, err := time.Parse(order.DateLayout, "2024-01-10")
	require.NoError(t, err)

	line, err := order.NewLine("P1", 2, mustDecimal(t, "25.00"), mustDecimal(t, "0"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, "ORD-000001", "C1", orderDate, deliveryDate,
		[]order.Line{line}, order.Draft, nil, "", 1)
	require.NoError(t, err)
	return o
}
