package monitor

import (
	"context"

	"pricesentinel/internal/schedule"
)

type DeviationMonitorTask struct {
	deviationSvc DeviationService
}

func NewDeviationMonitorTask(deviationSvc DeviationService) schedule.Task {
	return &DeviationMonitorTask{
		deviationSvc: deviationSvc,
	}
}

func (t *DeviationMonitorTask) Run(ctx context.Context) error {
	return t.deviationSvc.Scan(ctx)
}

func (t *DeviationMonitorTask) Name() string {
	return "price deviation monitor task"
}
