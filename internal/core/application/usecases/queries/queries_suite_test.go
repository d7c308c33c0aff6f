package queries_test

import (
	"context"
	"time"

	"warehouse/internal/adapters/out/postgres/boxrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresQuerySuite provides one database container per suite and a clean
// schema per test for the query handler suites that embed it.
type postgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *postgresQuerySuite) SetupSuite() {
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
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&boxrepo.BoxDTO{}, &productrepo.ProductDTO{})
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *postgresQuerySuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE boxes, products CASCADE").Error
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) saveBox(label string, status box.Status) *box.Box {
	b, err := box.NewBox(kernel.NewUUID(), label, status)
	s.Require().NoError(err)

	repo := boxrepo.NewGormBoxRepository(s.db, &stubAggregateTracker{})
	err = repo.Add(context.Background(), b)
	s.Require().NoError(err)

	return b
}

func (s *postgresQuerySuite) saveProduct(name, barcode string, boxID *kernel.UUID) *product.Product {
	p, err := product.RestoreProduct(kernel.NewUUID(), name, barcode, boxID)
	s.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(s.db, &stubAggregateTracker{})
	err = repo.Add(context.Background(), p)
	s.Require().NoError(err)

	return p
}

// stubAggregateTracker is a no-op tracker for seeding test data outside a
// unit of work.
type stubAggregateTracker struct{}

func (t *stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
