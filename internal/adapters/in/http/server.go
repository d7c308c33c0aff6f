// Package http exposes the warehouse operations over a REST API.
// Handlers translate between JSON payloads and commands/queries; every
// domain error is mapped to a status code through the closed error taxonomy.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/box"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createBoxHandler      commands.CreateBoxCommandHandler
	updateBoxHandler      commands.UpdateBoxCommandHandler
	removeBoxHandler      commands.RemoveBoxCommandHandler
	addProductsHandler    commands.AddProductsCommandHandler
	removeProductsHandler commands.RemoveProductsCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	updateProductHandler  commands.UpdateProductCommandHandler
	removeProductHandler  commands.RemoveProductCommandHandler

	listBoxesHandler    queries.ListBoxesQueryHandler
	getBoxHandler       queries.GetBoxQueryHandler
	listProductsHandler queries.ListProductsQueryHandler
	getProductHandler   queries.GetProductQueryHandler
	getBoxStatsHandler  queries.GetBoxStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createBoxHandler commands.CreateBoxCommandHandler,
	updateBoxHandler commands.UpdateBoxCommandHandler,
	removeBoxHandler commands.RemoveBoxCommandHandler,
	addProductsHandler commands.AddProductsCommandHandler,
	removeProductsHandler commands.RemoveProductsCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	removeProductHandler commands.RemoveProductCommandHandler,
	listBoxesHandler queries.ListBoxesQueryHandler,
	getBoxHandler queries.GetBoxQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getBoxStatsHandler queries.GetBoxStatsQueryHandler,
) *Server {
	return &Server{
		createBoxHandler:      createBoxHandler,
		updateBoxHandler:      updateBoxHandler,
		removeBoxHandler:      removeBoxHandler,
		addProductsHandler:    addProductsHandler,
		removeProductsHandler: removeProductsHandler,
		createProductHandler:  createProductHandler,
		updateProductHandler:  updateProductHandler,
		removeProductHandler:  removeProductHandler,
		listBoxesHandler:      listBoxesHandler,
		getBoxHandler:         getBoxHandler,
		listProductsHandler:   listProductsHandler,
		getProductHandler:     getProductHandler,
		getBoxStatsHandler:    getBoxStatsHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/boxes", s.ListBoxes)
	api.POST("/boxes", s.CreateBox)
	api.GET("/boxes/stats", s.GetBoxStats)
	api.GET("/boxes/:id", s.GetBox)
	api.PATCH("/boxes/:id", s.UpdateBox)
	api.DELETE("/boxes/:id", s.RemoveBox)
	api.POST("/boxes/:id/products", s.AddProducts)
	api.DELETE("/boxes/:id/products", s.RemoveProducts)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.RemoveProduct)
}

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(ctx echo.Context) error {
	var body createBoxRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status := box.Unknown
	if body.Status != "" {
		parsed, err := box.StatusFromString(body.Status)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+body.Status)
		}
		status = parsed
	}

	productIDs, err := parseUUIDs(body.ProductIDs)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewCreateBoxCommand(kernel.NewUUID(), body.Label, status, productIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, boxFromAggregate(created))
}

// ListBoxes handles GET /api/v1/boxes.
func (s *Server) ListBoxes(ctx echo.Context) error {
	var status *box.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := box.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		status = &parsed
	}

	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit")
	}
	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return badRequest(ctx, "Invalid offset")
	}

	query, err := queries.NewListBoxesQuery(
		ctx.QueryParam("search"),
		status,
		ctx.QueryParam("sort_by"),
		ctx.QueryParam("direction"),
		limit,
		offset,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.listBoxesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]boxSummaryJSON, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, boxSummaryJSON{
			ID:           item.ID.String(),
			Label:        item.Label,
			Status:       item.Status.String(),
			ProductCount: item.ProductCount,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, pageJSON[boxSummaryJSON]{Items: items, Total: result.Total})
}

// GetBox handles GET /api/v1/boxes/:id.
func (s *Server) GetBox(ctx echo.Context) error {
	boxID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid box id")
	}

	query, err := queries.NewGetBoxQuery(boxID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getBoxHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boxDetailsFromReadModel(result))
}

// UpdateBox handles PATCH /api/v1/boxes/:id.
func (s *Server) UpdateBox(ctx echo.Context) error {
	boxID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid box id")
	}

	var body updateBoxRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var patch commands.BoxPatch
	patch.Label = body.Label
	if body.Status != nil {
		parsed, statusErr := box.StatusFromString(*body.Status)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status: "+*body.Status)
		}
		patch.Status = &parsed
	}

	cmd, err := commands.NewUpdateBoxCommand(boxID, patch)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boxFromAggregate(updated))
}

// RemoveBox handles DELETE /api/v1/boxes/:id.
func (s *Server) RemoveBox(ctx echo.Context) error {
	boxID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid box id")
	}

	cmd, err := commands.NewRemoveBoxCommand(boxID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.removeBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddProducts handles POST /api/v1/boxes/:id/products.
func (s *Server) AddProducts(ctx echo.Context) error {
	boxID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid box id")
	}

	var body membershipRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productIDs, err := parseUUIDs(body.ProductIDs)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewAddProductsCommand(boxID, productIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.addProductsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boxFromAggregate(updated))
}

// RemoveProducts handles DELETE /api/v1/boxes/:id/products.
func (s *Server) RemoveProducts(ctx echo.Context) error {
	boxID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid box id")
	}

	var body membershipRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productIDs, err := parseUUIDs(body.ProductIDs)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewRemoveProductsCommand(boxID, productIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.removeProductsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, boxFromAggregate(updated))
}

// GetBoxStats handles GET /api/v1/boxes/stats.
func (s *Server) GetBoxStats(ctx echo.Context) error {
	query := queries.NewGetBoxStatsQuery()

	result, err := s.getBoxStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	statuses := make([]statusCountJSON, 0, len(result.Statuses))
	for _, count := range result.Statuses {
		statuses = append(statuses, statusCountJSON{
			Status:   count.Status.String(),
			Boxes:    count.Boxes,
			Products: count.Products,
		})
	}

	return ctx.JSON(http.StatusOK, boxStatsJSON{
		Statuses:           statuses,
		UnassignedProducts: result.UnassignedProducts,
	})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body createProductRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), body.Name, body.Barcode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromAggregate(created))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return badRequest(ctx, "Invalid limit")
	}
	offset, err := intQueryParam(ctx, "offset")
	if err != nil {
		return badRequest(ctx, "Invalid offset")
	}

	query, err := queries.NewListProductsQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("unassigned") == "true",
		ctx.QueryParam("sort_by"),
		ctx.QueryParam("direction"),
		limit,
		offset,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]productJSON, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, productFromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, pageJSON[productJSON]{Items: items, Total: result.Total})
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromReadModel(result))
}

// UpdateProduct handles PATCH /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var body updateProductRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(productID, product.Patch{
		Name:    body.Name,
		Barcode: body.Barcode,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromAggregate(updated))
}

// RemoveProduct handles DELETE /api/v1/products/:id.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.removeProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps a domain error to its HTTP status through the closed
// error taxonomy. Anything outside the taxonomy is treated as a client error
// from command construction.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return jsonError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return jsonError(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errs.ErrStoreFailure):
		return jsonError(ctx, http.StatusInternalServerError, err)
	default:
		return jsonError(ctx, http.StatusBadRequest, err)
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, errorJSON{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorJSON{Code: http.StatusBadRequest, Message: message})
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
