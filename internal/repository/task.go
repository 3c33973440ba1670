package repository

import (
	"context"

	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/models"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

const tasksTable = "tasks"

type taskRepository struct {
	client Querier
}

// NewTaskRepository creates a task repository
func NewTaskRepository(client Querier) TaskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string, dr wellbeing.DateRange) ([]models.TaskEvent, error) {
	tasks, err := fetchAll[models.TaskEvent](ctx, r.client, tasksTable, userQuery(userID, dr))
	if err != nil {
		return nil, err
	}

	valid := tasks[:0]
	for _, t := range tasks {
		if t.CreatedAt.IsZero() {
			logger.Ctx(ctx).Warn("Dropping task without created_at", logger.String("task_id", t.ID))
			continue
		}
		if !t.Consistent() {
			logger.Ctx(ctx).Debug("Task completion fields disagree",
				logger.String("task_id", t.ID),
			)
		}
		valid = append(valid, t)
	}

	return valid, nil
}
