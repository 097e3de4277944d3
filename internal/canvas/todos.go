package canvas

import (
	"context"
	"fmt"

	"github.com/Noah-Moller/CanvasKit/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetTodos lists the assignments of every course returned by GetCourses.
//
// Course assignment fetches run concurrently. The first failure cancels the
// rest and is returned; no partial list is produced. Todos are grouped by the
// order courses were returned, each group in the order Canvas listed them.
func (c *Client) GetTodos(ctx context.Context) ([]model.Todo, error) {
	courses, err := c.GetCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	perCourse := make([][]model.Assignment, len(courses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.todoConcurrency)
	for i, course := range courses {
		g.Go(func() error {
			assignments, err := c.GetAssignments(gctx, course.ID)
			if err != nil {
				return fmt.Errorf("assignments for course %d: %w", course.ID, err)
			}
			perCourse[i] = assignments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0)
	for i, course := range courses {
		for _, a := range perCourse[i] {
			todos = append(todos, model.NewTodo(course, a))
		}
	}

	c.logger.Debug(ctx, "todos collected",
		zap.Int("courses", len(courses)),
		zap.Int("todos", len(todos)),
	)
	return todos, nil
}
