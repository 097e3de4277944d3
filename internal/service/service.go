package service

import (
	"context"
	"errors"
	"time"

	"github.com/Noah-Moller/CanvasKit/internal/model"
	"github.com/Noah-Moller/CanvasKit/pkg/logging"
	"github.com/Noah-Moller/CanvasKit/pkg/retry"
	"go.uber.org/zap"
)

// CanvasAPI is the read surface of the Canvas client.
type CanvasAPI interface {
	GetCourses(ctx context.Context) ([]model.Course, error)
	GetModules(ctx context.Context, courseID int64) ([]model.Module, error)
	GetAssignments(ctx context.Context, courseID int64) ([]model.Assignment, error)
	GetGrades(ctx context.Context, courseID int64) ([]model.Grade, error)
	GetModuleItemContent(ctx context.Context, courseID int64, item model.ModuleItem) (model.ModuleItemContent, error)
	GetTodos(ctx context.Context) ([]model.Todo, error)
}

type RetryPolicy struct {
	MaxAttempts      int
	BaseDelay        time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
}

// CanvasService retries transient Canvas failures on behalf of gateway
// callers and trips a circuit breaker when Canvas keeps failing.
type CanvasService struct {
	api     CanvasAPI
	policy  RetryPolicy
	breaker *retry.CircuitBreaker
	logger  *logging.Logger
}

func NewCanvasService(api CanvasAPI, policy RetryPolicy, logger *logging.Logger) *CanvasService {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.FailureThreshold <= 0 {
		policy.FailureThreshold = 5
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &CanvasService{
		api:     api,
		policy:  policy,
		breaker: retry.NewCircuitBreaker(policy.FailureThreshold, policy.ResetTimeout),
		logger:  logger,
	}
}

func call[T any](ctx context.Context, s *CanvasService, op string, fn func() (T, error)) (T, error) {
	attempt := 0
	result, err := retry.RetryWithCircuitBreaker(ctx, s.breaker, s.policy.MaxAttempts, s.policy.BaseDelay, func() (T, error) {
		attempt++
		res, err := fn()
		if err != nil && retry.IsRetriable(err) {
			s.logger.Warn(ctx, "canvas call failed, may retry",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return res, err
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error(ctx, "canvas call failed",
			zap.String("op", op),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
	}
	return result, err
}

func (s *CanvasService) Courses(ctx context.Context) ([]model.Course, error) {
	return call(ctx, s, "courses", func() ([]model.Course, error) {
		return s.api.GetCourses(ctx)
	})
}

func (s *CanvasService) Modules(ctx context.Context, courseID int64) ([]model.Module, error) {
	return call(ctx, s, "modules", func() ([]model.Module, error) {
		return s.api.GetModules(ctx, courseID)
	})
}

func (s *CanvasService) Assignments(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	return call(ctx, s, "assignments", func() ([]model.Assignment, error) {
		return s.api.GetAssignments(ctx, courseID)
	})
}

func (s *CanvasService) Grades(ctx context.Context, courseID int64) ([]model.Grade, error) {
	return call(ctx, s, "grades", func() ([]model.Grade, error) {
		return s.api.GetGrades(ctx, courseID)
	})
}

func (s *CanvasService) ModuleItemContent(ctx context.Context, courseID int64, item model.ModuleItem) (model.ModuleItemContent, error) {
	return call(ctx, s, "module_item_content", func() (model.ModuleItemContent, error) {
		return s.api.GetModuleItemContent(ctx, courseID, item)
	})
}

func (s *CanvasService) Todos(ctx context.Context) ([]model.Todo, error) {
	return call(ctx, s, "todos", func() ([]model.Todo, error) {
		return s.api.GetTodos(ctx)
	})
}
