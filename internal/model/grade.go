package model

// Grade is a Canvas submission record for the authenticated user.
type Grade struct {
	ID            int64               `json:"id" validate:"required,gt=0"`
	AssignmentID  int64               `json:"assignment_id" validate:"required,gt=0"`
	Score         *float64            `json:"score,omitempty"`
	Grade         *string             `json:"grade,omitempty"`
	SubmittedAt   *Timestamp          `json:"submitted_at,omitempty"`
	GradedAt      *Timestamp          `json:"graded_at,omitempty"`
	Excused       *bool               `json:"excused,omitempty"`
	Late          *bool               `json:"late,omitempty"`
	Missing       *bool               `json:"missing,omitempty"`
	WorkflowState string              `json:"workflow_state"`
	Comments      []SubmissionComment `json:"submission_comments" validate:"dive"`
}

type SubmissionComment struct {
	ID           int64         `json:"id" validate:"required,gt=0"`
	AuthorID     int64         `json:"author_id"`
	AuthorName   string        `json:"author_name"`
	Comment      string        `json:"comment"`
	CreatedAt    *Timestamp    `json:"created_at" validate:"required"`
	MediaComment *MediaComment `json:"media_comment,omitempty"`
	Attachments  []Attachment  `json:"attachments,omitempty" validate:"dive"`
}

type MediaComment struct {
	MediaID     string `json:"media_id"`
	MediaType   string `json:"media_type"`
	DisplayName string `json:"display_name,omitempty"`
	URL         string `json:"url"`
}

type Attachment struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Filename    string `json:"filename"`
	DisplayName string `json:"display_name"`
	ContentType string `json:"content-type"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
}
