package canvas

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Noah-Moller/CanvasKit/internal/errdefs"
	"github.com/Noah-Moller/CanvasKit/internal/model"
)

var contentResources = map[model.ItemType]string{
	model.ItemTypeAssignment:      "assignments",
	model.ItemTypeQuiz:            "quizzes",
	model.ItemTypeDiscussionTopic: "discussion_topics",
	model.ItemTypeDiscussion:      "discussion_topics",
	model.ItemTypeFile:            "files",
	model.ItemTypePage:            "pages",
}

// GetModuleItemContent fetches the object a module item points at. Items
// without a content id, such as external links, are answered locally from
// the item itself.
func (c *Client) GetModuleItemContent(ctx context.Context, courseID int64, item model.ModuleItem) (model.ModuleItemContent, error) {
	if err := checkCourseID(courseID); err != nil {
		return model.ModuleItemContent{}, err
	}

	segments, local, err := contentSegments(courseID, item)
	if err != nil {
		return model.ModuleItemContent{}, err
	}
	if local {
		return model.ContentFromItem(item), nil
	}
	return fetchOne[model.ModuleItemContent](ctx, c, nil, segments...)
}

// contentSegments resolves the sub-resource for item. local is true when no
// request is needed.
func contentSegments(courseID int64, item model.ModuleItem) (segments []string, local bool, err error) {
	kind := item.Type.Normalized()

	// Pages are addressed by slug and usually carry no content id.
	if kind == model.ItemTypePage && item.PageURL != nil && *item.PageURL != "" {
		slug := *item.PageURL
		// JoinPath cleans the joined path, so dot segments would escape the pages collection.
		if slug == "." || slug == ".." || strings.Contains(slug, "/") {
			return nil, false, fmt.Errorf("%w: invalid page url %q", errdefs.ErrInvalidArgument, slug)
		}
		return []string{"courses", idSegment(courseID), "pages", url.PathEscape(slug)}, false, nil
	}

	if item.ContentID == nil {
		return nil, true, nil
	}
	if *item.ContentID <= 0 {
		return nil, false, fmt.Errorf("%w: content id must be positive, got %d", errdefs.ErrInvalidArgument, *item.ContentID)
	}

	resource, ok := contentResources[kind]
	if !ok {
		return nil, false, &errdefs.UnsupportedItemTypeError{Type: string(item.Type)}
	}
	return []string{"courses", idSegment(courseID), resource, idSegment(*item.ContentID)}, false, nil
}
