package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourse_RoundTrip(t *testing.T) {
	fixture := `{
		"id": 101,
		"name": "Biology 101",
		"course_code": "BIO101",
		"term": {"id": 3, "name": "Fall 2024", "start_at": "2024-09-01T00:00:00Z", "end_at": "2024-12-20T00:00:00Z"}
	}`

	var c Course
	require.NoError(t, json.Unmarshal([]byte(fixture), &c))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var again Course
	require.NoError(t, json.Unmarshal(data, &again))

	assert.Equal(t, c.ID, again.ID)
	assert.Equal(t, c.Name, again.Name)
	assert.Equal(t, c.CourseCode, again.CourseCode)
	require.NotNil(t, again.Term)
	assert.Equal(t, "Fall 2024", again.Term.Name)
	assert.True(t, c.Term.StartAt.Equal(again.Term.StartAt.Time))
}

func TestItemType_Normalized(t *testing.T) {
	assert.Equal(t, ItemTypeAssignment, ItemType("Assignment").Normalized())
	assert.Equal(t, ItemTypeDiscussion, ItemType(" Discussion ").Normalized())
	assert.Equal(t, ItemType("externalurl"), ItemType("ExternalUrl").Normalized())
}

func TestModuleItem_NavigableURL(t *testing.T) {
	html := "https://school.instructure.com/courses/1/modules/items/9"
	api := "https://school.instructure.com/api/v1/courses/1/assignments/2"

	item := ModuleItem{HTMLURL: &html, URL: &api}
	require.NotNil(t, item.NavigableURL())
	assert.Equal(t, html, *item.NavigableURL())

	assert.Nil(t, ModuleItem{}.NavigableURL())
}

func TestNewTodo(t *testing.T) {
	points := 10.0
	course := Course{ID: 1, Name: "Math"}
	a := Assignment{ID: 2, Name: "Quiz 1", CourseID: 1, HTMLURL: "https://x/2", PointsPossible: &points, IsQuizAssignment: true}

	todo := NewTodo(course, a)

	assert.Equal(t, int64(2), todo.AssignmentID)
	assert.Equal(t, "Math", todo.CourseName)
	assert.Equal(t, TodoKindQuiz, todo.Kind)
	assert.Equal(t, &points, todo.PointsPossible)
}
