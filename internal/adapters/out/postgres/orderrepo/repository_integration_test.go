package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"robodelivery/internal/adapters/out/postgres/orderrepo"
	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"
	"robodelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	duplicate, err := order.RestoreOrder(
		testOrder.ID(), kernel.NewUUID(), 1, 10, 5,
		order.AwaitingShipment, time.Now().UTC(), nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.ProductID(), retrieved.ProductID())
	suite.Equal(testOrder.Quantity(), retrieved.Quantity())
	suite.Equal(testOrder.Weight(), retrieved.Weight())
	suite.Equal(testOrder.Value(), retrieved.Value())
	suite.Equal(order.AwaitingShipment, retrieved.Status())
	suite.Nil(retrieved.ArrivedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndArrival() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Dispatch())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingShipment_FiltersByStatus() {
	ctx := context.Background()

	awaiting := suite.createTestOrder()
	dispatched := suite.createTestOrder()
	suite.Require().NoError(dispatched.Dispatch())
	delivered := suite.createTestOrder()
	suite.Require().NoError(delivered.Dispatch())
	suite.Require().NoError(delivered.Complete())

	for _, o := range []*order.Order{awaiting, dispatched, delivered} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	eligible, err := suite.repository.GetAllAwaitingShipment(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)
	suite.Equal(awaiting.ID(), eligible[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_ExpectedMatches_Commits() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Dispatch())
	committed, err := suite.repository.UpdateIfStatus(ctx, testOrder, order.AwaitingShipment)
	suite.Require().NoError(err)
	suite.True(committed)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_RowAlreadyMoved_ReturnsFalse() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Dispatch())
	committed, err := suite.repository.UpdateIfStatus(ctx, testOrder, order.AwaitingShipment)
	suite.Require().NoError(err)
	suite.True(committed)

	// A second writer holding a stale snapshot loses the conditional update.
	stale, err := order.RestoreOrder(
		testOrder.ID(), testOrder.ProductID(),
		testOrder.Quantity(), testOrder.Weight(), testOrder.Value(),
		order.AwaitingShipment, testOrder.CreatedAt(), nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Dispatch())

	committed, err = suite.repository.UpdateIfStatus(ctx, stale, order.AwaitingShipment)
	suite.Require().NoError(err)
	suite.False(committed)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_DeliveredWritesArrival() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.Dispatch())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Complete())
	committed, err := suite.repository.UpdateIfStatus(ctx, testOrder, order.OutForDelivery)
	suite.Require().NoError(err)
	suite.True(committed)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.ArrivedAt())
	suite.WithinDuration(*testOrder.ArrivedAt(), *retrieved.ArrivedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 2, 30, 10)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
