package model

type Assignment struct {
	ID               int64      `json:"id" validate:"required,gt=0"`
	Name             string     `json:"name" validate:"required"`
	Description      *string    `json:"description,omitempty"`
	DueAt            *Timestamp `json:"due_at,omitempty"`
	PointsPossible   *float64   `json:"points_possible,omitempty"`
	CourseID         int64      `json:"course_id" validate:"required,gt=0"`
	HTMLURL          string     `json:"html_url" validate:"required"`
	SubmissionTypes  []string   `json:"submission_types"`
	IsQuizAssignment bool       `json:"is_quiz_assignment"`
	LockedForUser    *bool      `json:"locked_for_user,omitempty"`
	Published        bool       `json:"published"`
}
