package cmd

import (
	"log/slog"

	"courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/auth"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to application services. All construction
// happens here; the rest of the code receives dependencies through
// constructors.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAuthService() *auth.Service {
	var f auth.UserUoWFactory = FuncAuthUoWFactory(func() auth.UserUoW {
		return c.uowFactory.Create()
	})
	return auth.NewService(f, c.config.JWTSecret, c.config.JWTExpMinutes)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCarrierCommandHandler() commands.AssignCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateAuthService(),
		c.config.JWTSecret,
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateAssignCarrierCommandHandler(),
		c.CreateUpdateUserCommandHandler(),
		c.CreateDeleteUserCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateListUsersQueryHandler(),
		c.CreateGetUserQueryHandler(),
	)
}

// CreateJobManager builds the background jobs. Returns nil when no cron
// schedule is configured.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	if c.config.AutoAssignCron == "" {
		return nil
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})

	assignmentJob := jobs.NewCarrierAssignmentJob(
		f,
		c.CreateAssignCarrierCommandHandler(),
		c.config.AutoAssignCron,
		logger,
	)

	return jobs.NewJobManager(assignmentJob)
}

type FuncAuthUoWFactory func() auth.UserUoW

func (f FuncAuthUoWFactory) Create() auth.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
