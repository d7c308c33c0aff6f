package productrepo_test

import (
	"context"
	"testing"

	"warehouse/internal/adapters/out/postgres/boxrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *productrepo.GormProductRepository
	boxRepo   *boxrepo.GormBoxRepository
}

type stubTracker struct{}

func (t *stubTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&boxrepo.BoxDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.repo = productrepo.NewGormProductRepository(db, &stubTracker{})
	suite.boxRepo = boxrepo.NewGormBoxRepository(db, &stubTracker{})
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE boxes, products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "WID-001")
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, p)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(p))
	suite.Equal("Widget", stored.Name())
	suite.Equal("WID-001", stored.Barcode())
	suite.Nil(stored.BoxID())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_UnknownProduct_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateBarcode_ReturnsBusinessRuleViolation() {
	ctx := context.Background()
	first, err := product.NewProduct(kernel.NewUUID(), "Widget", "WID-001")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, first))

	second, err := product.NewProduct(kernel.NewUUID(), "Other Widget", "WID-001")
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrBusinessRuleViolation)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsBoxAssignment() {
	ctx := context.Background()
	b, err := box.NewBox(kernel.NewUUID(), "BOX-001", box.Created)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.boxRepo.Add(ctx, b))

	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "WID-001")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	suite.Require().NoError(p.AssignToBox(b.ID()))
	suite.Require().NoError(suite.repo.Update(ctx, p))

	stored, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.BoxID())
	suite.True(stored.BoxID().IsEqual(b.ID()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_ClearsBoxAssignment() {
	ctx := context.Background()
	b, err := box.NewBox(kernel.NewUUID(), "BOX-001", box.Created)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.boxRepo.Add(ctx, b))

	boxID := b.ID()
	p, err := product.RestoreProduct(kernel.NewUUID(), "Widget", "WID-001", &boxID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	suite.Require().NoError(p.RemoveFromBox(b.ID()))
	suite.Require().NoError(suite.repo.Update(ctx, p))

	stored, err := suite.repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.BoxID(), "Cleared box reference must be written out")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_VanishedRow_ReturnsNotFound() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "WID-001")
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, p)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", "WID-001")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, p))

	suite.Require().NoError(suite.repo.Delete(ctx, p.ID()))

	_, err = suite.repo.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_UnknownProduct_ReturnsNotFound() {
	err := suite.repo.Delete(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
