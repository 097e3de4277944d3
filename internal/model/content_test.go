package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleItemContent_KeyFallback(t *testing.T) {
	t.Run("Assignment", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{
			"id": 222,
			"name": "Essay 1",
			"description": "<p>Write.</p>",
			"html_url": "https://school.instructure.com/courses/1/assignments/222",
			"created_at": "2024-01-01T00:00:00Z",
			"updated_at": "2024-01-02T00:00:00Z"
		}`), &c))

		assert.Equal(t, int64(222), c.ID)
		assert.Equal(t, "Essay 1", c.Title)
		require.NotNil(t, c.Description)
		assert.Equal(t, "<p>Write.</p>", *c.Description)
		require.NotNil(t, c.URL)
		assert.Contains(t, *c.URL, "/assignments/222")
		assert.Nil(t, c.FileURL)
		assert.Nil(t, c.Content)
		require.NotNil(t, c.UpdatedAt)
	})

	t.Run("Page", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{
			"page_id": 7,
			"url": "week-1-notes",
			"title": "Week 1 Notes",
			"body": "<h1>Notes</h1>"
		}`), &c))

		assert.Equal(t, int64(7), c.ID)
		assert.Equal(t, "Week 1 Notes", c.Title)
		require.NotNil(t, c.Content)
		assert.Equal(t, "<h1>Notes</h1>", *c.Content)
		require.NotNil(t, c.URL)
		assert.Equal(t, "week-1-notes", *c.URL)
	})

	t.Run("File", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{
			"id": 31,
			"display_name": "syllabus.pdf",
			"filename": "syllabus-1.pdf",
			"content-type": "application/pdf",
			"url": "https://files.example.com/31/download"
		}`), &c))

		assert.Equal(t, "syllabus.pdf", c.Title)
		require.NotNil(t, c.MIMEType)
		assert.Equal(t, "application/pdf", *c.MIMEType)
		require.NotNil(t, c.FileURL)
		assert.Equal(t, "https://files.example.com/31/download", *c.FileURL)
		assert.Nil(t, c.URL)
	})

	t.Run("Discussion", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{
			"id": 5,
			"title": "Introduce yourself",
			"message": "<p>Hi all</p>",
			"posted_at": "2024-02-01T10:00:00Z"
		}`), &c))

		require.NotNil(t, c.Description)
		assert.Equal(t, "<p>Hi all</p>", *c.Description)
		require.NotNil(t, c.CreatedAt)
		assert.Equal(t, 2, int(c.CreatedAt.Month()))
	})

	t.Run("HTMLContentFillsContent", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{"id": 9, "title": "x", "body": null, "html_content": "<b>y</b>"}`), &c))

		require.NotNil(t, c.Content)
		assert.Equal(t, "<b>y</b>", *c.Content)
		require.NotNil(t, c.HTMLContent)
		assert.Equal(t, "<b>y</b>", *c.HTMLContent)
	})

	t.Run("NullFallsThrough", func(t *testing.T) {
		var c ModuleItemContent
		require.NoError(t, json.Unmarshal([]byte(`{"id": 9, "title": null, "name": "Named"}`), &c))
		assert.Equal(t, "Named", c.Title)
	})
}

func TestModuleItemContent_TypeMismatch(t *testing.T) {
	var c ModuleItemContent
	err := json.Unmarshal([]byte(`{"id": "nine", "title": "x"}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"id"`)

	err = json.Unmarshal([]byte(`{"id": 9, "title": "x", "created_at": "2024-02-01"}`), &c)
	assert.Error(t, err)
}

func TestContentFromItem(t *testing.T) {
	external := "https://example.com/reading"
	item := ModuleItem{ID: 44, Title: "Further reading", Type: "ExternalUrl", ExternalURL: &external}

	c := ContentFromItem(item)

	assert.Equal(t, int64(44), c.ID)
	assert.Equal(t, "Further reading", c.Title)
	require.NotNil(t, c.URL)
	assert.Equal(t, external, *c.URL)
	assert.Nil(t, c.Content)
}
