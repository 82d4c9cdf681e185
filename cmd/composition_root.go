package cmd

import (
	"tradelink/internal/adapters/out/postgres"
	"tradelink/internal/adapters/out/postgres/triprepo"
	"tradelink/internal/core/application/usecases/commands"
	"tradelink/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTripCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceTripCommandHandler() commands.AdvanceTripCommandHandler {
	return commands.NewAdvanceTripCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateFinishTripCommandHandler() commands.FinishTripCommandHandler {
	return commands.NewFinishTripCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateReconcileTripCommandHandler() commands.ReconcileTripCommandHandler {
	return commands.NewReconcileTripCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingDispatchOrdersQueryHandler() queries.GetPendingDispatchOrdersQueryHandler {
	return queries.NewGetPendingDispatchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveTripsQueryHandler() queries.GetActiveTripsQueryHandler {
	return queries.NewGetActiveTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTripDetailsQueryHandler() queries.GetTripDetailsQueryHandler {
	return queries.NewGetTripDetailsQueryHandler(c.gormDB)
}

// CreateTripRepository builds a standalone trip repository outside any unit
// of work. Used by the reconciliation job to list active trips.
func (c *CompositionRoot) CreateTripRepository() *triprepo.GormTripRepository {
	return triprepo.NewGormTripRepository(c.gormDB, noopTracker{})
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
