package model

import "strings"

type Module struct {
	ID         int64        `json:"id" validate:"required,gt=0"`
	Name       string       `json:"name" validate:"required"`
	Position   int          `json:"position"`
	UnlockAt   *Timestamp   `json:"unlock_at,omitempty"`
	ItemsCount int          `json:"items_count"`
	Published  bool         `json:"published"`
	Items      []ModuleItem `json:"items" validate:"dive"`
}

// ItemType is the module item type tag. The set is open: values not listed
// below are kept as received.
type ItemType string

const (
	ItemTypeAssignment      ItemType = "assignment"
	ItemTypeQuiz            ItemType = "quiz"
	ItemTypeDiscussionTopic ItemType = "discussion_topic"
	ItemTypeDiscussion      ItemType = "discussion"
	ItemTypeFile            ItemType = "file"
	ItemTypePage            ItemType = "page"
)

// Normalized returns the lower-cased tag used for dispatch.
func (t ItemType) Normalized() ItemType {
	return ItemType(strings.ToLower(strings.TrimSpace(string(t))))
}

type ModuleItem struct {
	ID             int64           `json:"id" validate:"required,gt=0"`
	ModuleID       int64           `json:"module_id"`
	Title          string          `json:"title"`
	Position       int             `json:"position"`
	Indent         int             `json:"indent"`
	Type           ItemType        `json:"type"`
	ContentID      *int64          `json:"content_id,omitempty"`
	HTMLURL        *string         `json:"html_url,omitempty"`
	URL            *string         `json:"url,omitempty"`
	PageURL        *string         `json:"page_url,omitempty"`
	ExternalURL    *string         `json:"external_url,omitempty"`
	ContentDetails *ContentDetails `json:"content_details,omitempty"`
}

type ContentDetails struct {
	PointsPossible *float64   `json:"points_possible,omitempty"`
	DueAt          *Timestamp `json:"due_at,omitempty"`
	UnlockAt       *Timestamp `json:"unlock_at,omitempty"`
	LockAt         *Timestamp `json:"lock_at,omitempty"`
	LockedForUser  bool       `json:"locked_for_user"`
}

// NavigableURL picks the first link a user can follow for the item.
func (i ModuleItem) NavigableURL() *string {
	for _, u := range []*string{i.ExternalURL, i.HTMLURL, i.URL} {
		if u != nil && *u != "" {
			return u
		}
	}
	return nil
}
