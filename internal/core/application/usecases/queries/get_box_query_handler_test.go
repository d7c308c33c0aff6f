package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetBoxQueryHandlerTestSuite struct {
	postgresQuerySuite
	handler queries.GetBoxQueryHandler
}

func (s *GetBoxQueryHandlerTestSuite) SetupSuite() {
	s.postgresQuerySuite.SetupSuite()
	s.handler = queries.NewGetBoxQueryHandler(s.db)
}

func (s *GetBoxQueryHandlerTestSuite) TestHandle_ReturnsBoxWithProducts() {
	b := s.saveBox("BOX-A", box.Sealed)
	boxID := b.ID()
	s.saveProduct("Widget", "WID-001", &boxID)
	s.saveProduct("Gadget", "GAD-001", &boxID)
	s.saveProduct("Gizmo", "GIZ-001", nil)

	query, err := queries.NewGetBoxQuery(b.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(b.ID(), result.ID)
	s.Equal("BOX-A", result.Label)
	s.Equal(box.Sealed, result.Status)
	s.False(result.CreatedAt.IsZero())
	s.False(result.UpdatedAt.IsZero())

	s.Require().Len(result.Products, 2)
	s.Equal("Gadget", result.Products[0].Name)
	s.Equal("Widget", result.Products[1].Name)
	s.Require().NotNil(result.Products[0].BoxID)
	s.True(result.Products[0].BoxID.IsEqual(b.ID()))
}

func (s *GetBoxQueryHandlerTestSuite) TestHandle_EmptyBox_ReturnsEmptyProductList() {
	b := s.saveBox("BOX-A", box.Created)

	query, err := queries.NewGetBoxQuery(b.ID())
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Empty(result.Products)
}

func (s *GetBoxQueryHandlerTestSuite) TestHandle_UnknownBox_ReturnsNotFound() {
	query, err := queries.NewGetBoxQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = s.handler.Handle(context.Background(), query)

	s.Require().Error(err)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetBoxQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBoxQueryHandlerTestSuite))
}
