package model

import (
	"encoding/json"
	"fmt"
)

// ModuleItemContent is the resolved body of a module item. Canvas returns a
// different shape per item type, so decoding resolves each field from a fixed
// list of candidate keys, first non-null key wins:
//
//	id           id, page_id
//	title        title, name, display_name, filename
//	description  description, message
//	content      body, html_content
//	html_content html_content
//	mime_type    content-type, content_type, mime_type
//	file_url     file_url, then url when a mime type was found
//	url          html_url, then url when no mime type was found
//	created_at   created_at, posted_at
//	updated_at   updated_at
type ModuleItemContent struct {
	ID          int64      `json:"id" validate:"required,gt=0"`
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description,omitempty"`
	Content     *string    `json:"body,omitempty"`
	HTMLContent *string    `json:"html_content,omitempty"`
	URL         *string    `json:"html_url,omitempty"`
	FileURL     *string    `json:"file_url,omitempty"`
	MIMEType    *string    `json:"content_type,omitempty"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// Synthesized content for items that have no backing Canvas object, such as
// external links.
func ContentFromItem(item ModuleItem) ModuleItemContent {
	return ModuleItemContent{
		ID:    item.ID,
		Title: item.Title,
		URL:   item.NavigableURL(),
	}
}

type rawObject map[string]json.RawMessage

// lookup decodes the first present, non-null key into dst.
func (o rawObject) lookup(dst any, keys ...string) (bool, error) {
	for _, key := range keys {
		raw, ok := o[key]
		if !ok || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return false, fmt.Errorf("field %q: %w", key, err)
		}
		return true, nil
	}
	return false, nil
}

func (o rawObject) optionalString(keys ...string) (*string, error) {
	var s string
	found, err := o.lookup(&s, keys...)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (o rawObject) optionalTimestamp(keys ...string) (*Timestamp, error) {
	var ts Timestamp
	found, err := o.lookup(&ts, keys...)
	if err != nil || !found {
		return nil, err
	}
	return &ts, nil
}

func (c *ModuleItemContent) UnmarshalJSON(data []byte) error {
	var obj rawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	var (
		out ModuleItemContent
		err error
	)

	if _, err = obj.lookup(&out.ID, "id", "page_id"); err != nil {
		return err
	}
	if _, err = obj.lookup(&out.Title, "title", "name", "display_name", "filename"); err != nil {
		return err
	}
	if out.Description, err = obj.optionalString("description", "message"); err != nil {
		return err
	}
	if out.Content, err = obj.optionalString("body", "html_content"); err != nil {
		return err
	}
	if out.HTMLContent, err = obj.optionalString("html_content"); err != nil {
		return err
	}
	if out.MIMEType, err = obj.optionalString("content-type", "content_type", "mime_type"); err != nil {
		return err
	}

	urlKeys := []string{"html_url", "url"}
	fileKeys := []string{"file_url"}
	if out.MIMEType != nil {
		urlKeys = []string{"html_url"}
		fileKeys = append(fileKeys, "url")
	}
	if out.FileURL, err = obj.optionalString(fileKeys...); err != nil {
		return err
	}
	if out.URL, err = obj.optionalString(urlKeys...); err != nil {
		return err
	}

	if out.CreatedAt, err = obj.optionalTimestamp("created_at", "posted_at"); err != nil {
		return err
	}
	if out.UpdatedAt, err = obj.optionalTimestamp("updated_at"); err != nil {
		return err
	}

	*c = out
	return nil
}
