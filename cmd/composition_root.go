package cmd

import (
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBoxCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductsCommandHandler() commands.AddProductsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveProductsCommandHandler() commands.RemoveProductsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBoxCommandHandler() commands.UpdateBoxCommandHandler {
	var f commands.BoxUoWFactory = FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBoxCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveBoxCommandHandler() commands.RemoveBoxCommandHandler {
	var f commands.BoxUoWFactory = FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveBoxCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductCommandHandler(f)
}

func (c *CompositionRoot) CreateListBoxesQueryHandler() queries.ListBoxesQueryHandler {
	return queries.NewListBoxesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxQueryHandler() queries.GetBoxQueryHandler {
	return queries.NewGetBoxQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxStatsQueryHandler() queries.GetBoxStatsQueryHandler {
	return queries.NewGetBoxStatsQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncBoxUoWFactory func() commands.BoxUoW

func (f FuncBoxUoWFactory) Create() commands.BoxUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
