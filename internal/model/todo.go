package model

type TodoKind string

const (
	TodoKindAssignment TodoKind = "assignment"
	TodoKindQuiz       TodoKind = "quiz"
)

// Todo is an assignment flattened together with the course it came from.
type Todo struct {
	AssignmentID   int64      `json:"assignment_id"`
	CourseID       int64      `json:"course_id"`
	CourseName     string     `json:"course_name"`
	Title          string     `json:"title"`
	DueAt          *Timestamp `json:"due_at,omitempty"`
	PointsPossible *float64   `json:"points_possible,omitempty"`
	HTMLURL        string     `json:"html_url"`
	Kind           TodoKind   `json:"kind"`
}

func NewTodo(course Course, a Assignment) Todo {
	kind := TodoKindAssignment
	if a.IsQuizAssignment {
		kind = TodoKindQuiz
	}
	return Todo{
		AssignmentID:   a.ID,
		CourseID:       course.ID,
		CourseName:     course.Name,
		Title:          a.Name,
		DueAt:          a.DueAt,
		PointsPossible: a.PointsPossible,
		HTMLURL:        a.HTMLURL,
		Kind:           kind,
	}
}
