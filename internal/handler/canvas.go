package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Noah-Moller/CanvasKit/internal/model"
	"github.com/go-chi/chi/v5"
)

const maxItemBodyBytes = 1 << 20

type CanvasReader interface {
	Courses(ctx context.Context) ([]model.Course, error)
	Modules(ctx context.Context, courseID int64) ([]model.Module, error)
	Assignments(ctx context.Context, courseID int64) ([]model.Assignment, error)
	Grades(ctx context.Context, courseID int64) ([]model.Grade, error)
	ModuleItemContent(ctx context.Context, courseID int64, item model.ModuleItem) (model.ModuleItemContent, error)
	Todos(ctx context.Context) ([]model.Todo, error)
}

type CanvasHandler struct {
	svc CanvasReader
}

func NewCanvasHandler(svc CanvasReader) *CanvasHandler {
	return &CanvasHandler{svc: svc}
}

func (h *CanvasHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
	r.Route("/courses/{course_id}", func(r chi.Router) {
		r.Get("/modules", h.ListModules)
		r.Get("/assignments", h.ListAssignments)
		r.Get("/grades", h.ListGrades)
		r.Post("/module-items/content", h.GetModuleItemContent)
	})
	r.Get("/todos", h.ListTodos)
}

func (h *CanvasHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.Courses(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, courses)
}

func (h *CanvasHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseIDParam(r, "course_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	modules, err := h.svc.Modules(r.Context(), courseID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, modules)
}

func (h *CanvasHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseIDParam(r, "course_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	assignments, err := h.svc.Assignments(r.Context(), courseID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, assignments)
}

func (h *CanvasHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseIDParam(r, "course_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	grades, err := h.svc.Grades(r.Context(), courseID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, grades)
}

// GetModuleItemContent resolves a module item, posted as the JSON object
// returned by the modules endpoint.
func (h *CanvasHandler) GetModuleItemContent(w http.ResponseWriter, r *http.Request) {
	courseID, err := parseIDParam(r, "course_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	var item model.ModuleItem
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxItemBodyBytes)).Decode(&item); err != nil {
		writeErr(w, r, fmt.Errorf("%w: invalid module item: %v", ErrBadRequest, err))
		return
	}
	if item.ID <= 0 {
		writeErr(w, r, fmt.Errorf("%w: module item id must be positive", ErrBadRequest))
		return
	}

	content, err := h.svc.ModuleItemContent(r.Context(), courseID, item)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, content)
}

func (h *CanvasHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.Todos(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, r, todos)
}
