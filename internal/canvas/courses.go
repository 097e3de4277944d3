package canvas

import (
	"context"

	"github.com/Noah-Moller/CanvasKit/internal/model"
)

// GetCourses lists the active student enrollments of the token owner that are
// currently available, with their enrollment term.
func (c *Client) GetCourses(ctx context.Context) ([]model.Course, error) {
	q := listQuery("term")
	q.Set("enrollment_state", "active")
	q.Set("enrollment_type", "student")
	q.Add("state[]", "available")
	return fetchList[model.Course](ctx, c, q, "courses")
}

// GetModules lists the modules of a course with their items and per-item
// content details inline.
func (c *Client) GetModules(ctx context.Context, courseID int64) ([]model.Module, error) {
	if err := checkCourseID(courseID); err != nil {
		return nil, err
	}
	q := listQuery("items", "content_details")
	return fetchList[model.Module](ctx, c, q, "courses", idSegment(courseID), "modules")
}

func (c *Client) GetAssignments(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	if err := checkCourseID(courseID); err != nil {
		return nil, err
	}
	q := listQuery("description")
	return fetchList[model.Assignment](ctx, c, q, "courses", idSegment(courseID), "assignments")
}

// GetGrades lists the caller's own submissions in a course, comments included.
func (c *Client) GetGrades(ctx context.Context, courseID int64) ([]model.Grade, error) {
	if err := checkCourseID(courseID); err != nil {
		return nil, err
	}
	q := listQuery("submission_comments")
	q.Add("student_ids[]", "self")
	return fetchList[model.Grade](ctx, c, q, "courses", idSegment(courseID), "students", "submissions")
}
