package jobs

import (
	"context"
	"errors"
	"log/slog"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// CarrierAssignmentJob periodically matches pending orders with available
// carriers. Each sweep lists the pending backlog and runs the assignment
// command per order; a sweep ends early once no carrier is left.
type CarrierAssignmentJob struct {
	uowFactory    commands.OrderUoWFactory
	assignHandler commands.AssignCarrierCommandHandler
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewCarrierAssignmentJob creates the assignment job. The schedule is a
// standard five field cron expression.
func NewCarrierAssignmentJob(
	uowFactory commands.OrderUoWFactory,
	assignHandler commands.AssignCarrierCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CarrierAssignmentJob {
	return &CarrierAssignmentJob{
		uowFactory:    uowFactory,
		assignHandler: assignHandler,
		schedule:      schedule,
		cron:          cron.New(),
		logger:        logger.With("component", "carrier_assignment_job"),
	}
}

// Start schedules the job.
func (j *CarrierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Carrier assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. A sweep already running completes.
func (j *CarrierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Carrier assignment job stopped")
}

func (j *CarrierAssignmentJob) sweep() {
	ctx := context.Background()

	pending, err := j.pendingOrderIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list pending orders", "error", err)
		return
	}

	for _, orderID := range pending {
		cmd, cmdErr := commands.NewAssignCarrierCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command", "error", cmdErr)
			continue
		}

		handleErr := j.assignHandler.Handle(ctx, cmd)
		switch {
		case handleErr == nil:
			j.logger.InfoContext(ctx, "Order assigned", "order_id", orderID.String())
		case errors.Is(handleErr, commands.ErrNoAvailableCarriers):
			// the rest of the backlog cannot be served this sweep
			return
		case errors.Is(handleErr, commands.ErrOrderNotAssignable):
			// raced with a manual update; skip
		default:
			j.logger.ErrorContext(ctx, "Assignment failed", "order_id", orderID.String(), "error", handleErr)
		}
	}
}

func (j *CarrierAssignmentJob) pendingOrderIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, len(orders))
	for i, aggregate := range orders {
		ids[i] = aggregate.ID()
	}

	return ids, nil
}
