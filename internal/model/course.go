package model

type Course struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	CourseCode string `json:"course_code"`
	Term       *Term  `json:"term,omitempty"`
}

// Term is the enrollment term a course belongs to.
type Term struct {
	ID      int64      `json:"id" validate:"required,gt=0"`
	Name    string     `json:"name"`
	StartAt *Timestamp `json:"start_at,omitempty"`
	EndAt   *Timestamp `json:"end_at,omitempty"`
}
