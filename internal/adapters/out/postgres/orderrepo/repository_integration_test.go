//go:build integration

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/voucherrepo"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/voucher"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&voucherrepo.VoucherDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, vouchers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DraftWithItems() {
	ctx := context.Background()
	o := suite.newDraft(
		order.NewItem(kernel.NewUUID(), "Keyboard", 2, decimal.RequireFromString("49.90")),
		order.NewItem(kernel.NewUUID(), "Mouse", 1, decimal.RequireFromString("19.99")),
	)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
	suite.assertCount("orders", 1)
	suite.assertCount("order_items", 2)

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(retrieved))
	suite.Equal(o.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Draft, retrieved.Status())
	suite.True(decimal.RequireFromString("119.79").Equal(retrieved.Total()))
	suite.False(retrieved.VoucherUsed())
	suite.Nil(retrieved.Voucher())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Keyboard", items[0].ProductName())
	suite.Equal("Mouse", items[1].ProductName())
	suite.Equal(o.ID(), *items[0].OrderID())
	suite.Equal(2, items[0].Quantity())
	suite.True(decimal.RequireFromString("49.90").Equal(items[0].UnitPrice()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount("orders", 0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItemsAndKeepsOrder() {
	ctx := context.Background()
	keyboard := kernel.NewUUID()
	mouse := kernel.NewUUID()
	o := suite.newDraft(
		order.NewItem(keyboard, "Keyboard", 1, decimal.NewFromInt(100)),
		order.NewItem(mouse, "Mouse", 1, decimal.NewFromInt(20)),
	)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	mouseLine := o.Items()[1]
	o.AddItem(order.NewItem(kernel.NewUUID(), "Monitor", 1, decimal.NewFromInt(300)))
	suite.Require().NoError(o.RemoveItem(order.NewItem(keyboard, "", 0, decimal.Zero)))
	suite.Require().NoError(o.ChangeUnits(mouseLine, 3))
	o.Start()

	suite.Require().NoError(suite.repository.Update(ctx, o))

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Initiated, retrieved.Status())
	suite.True(decimal.NewFromInt(360).Equal(retrieved.Total()))

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Monitor", items[0].ProductName())
	suite.Equal(mouse, items[1].ProductID(), "a changed line is stored after the others")
	suite.Equal(3, items[1].Quantity())
	suite.assertCount("order_items", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresAppliedVoucher() {
	ctx := context.Background()
	v, err := voucher.NewVoucher("FIXED-50", voucher.FixedAmount, decimal.NewFromInt(50), 1, time.Now().Add(time.Hour), true, false)
	suite.Require().NoError(err)
	suite.Require().NoError(voucherrepo.NewGormVoucherRepository(suite.db, suite.tracker).Add(ctx, v))

	o := suite.newDraft(order.NewItem(kernel.NewUUID(), "Cable", 1, decimal.NewFromInt(30)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	result, err := o.ApplyVoucher(v, time.Now())
	suite.Require().NoError(err)
	suite.Require().True(result.IsValid())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.VoucherUsed())
	suite.Require().NotNil(retrieved.Voucher())
	suite.Equal("FIXED-50", retrieved.Voucher().Code())
	suite.True(retrieved.Total().IsZero(), "total is clamped at zero")
	suite.True(decimal.NewFromInt(50).Equal(retrieved.Discount()), "discount keeps the full voucher value")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newDraft()

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	o := suite.newDraft(order.NewItem(kernel.NewUUID(), "Pen", 10, decimal.NewFromInt(2)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		locked, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(ctx, o.ID())
		if err != nil {
			return err
		}
		suite.Equal(1, locked.ItemCount())
		return nil
	})

	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDraftsCreatedBefore() {
	ctx := context.Background()
	now := time.Now().UTC()

	stale := suite.restore(order.Draft, now.Add(-48*time.Hour))
	fresh := suite.restore(order.Draft, now.Add(-time.Hour))
	staleButPaid := suite.restore(order.Paid, now.Add(-72*time.Hour))
	older := suite.restore(order.Draft, now.Add(-96*time.Hour))
	for _, o := range []*order.Order{stale, fresh, staleButPaid, older} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	drafts, err := suite.repository.GetDraftsCreatedBefore(ctx, now.Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(drafts, 2)
	suite.Equal(older.ID(), drafts[0].ID())
	suite.Equal(stale.ID(), drafts[1].ID())
	suite.Equal(1, drafts[0].ItemCount())
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraft(items ...*order.Item) *order.Order {
	o, err := order.NewDraftOrder(kernel.NewUUID())
	suite.Require().NoError(err)
	for _, item := range items {
		o.AddItem(item)
	}
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) restore(status order.Status, createdAt time.Time) *order.Order {
	id := kernel.NewUUID()
	item, err := order.RestoreItem(kernel.NewUUID(), id, kernel.NewUUID(), "Stapler", 1, decimal.NewFromInt(15), createdAt)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(order.State{
		ID:         id,
		CustomerID: kernel.NewUUID(),
		Total:      decimal.NewFromInt(15),
		Discount:   decimal.Zero,
		Status:     status,
		CreatedAt:  createdAt,
		Items:      []*order.Item{item},
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
