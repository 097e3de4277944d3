package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"UTCDesignator", "2024-01-15T23:59:00Z", time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC), false},
		{"ColonOffset", "2024-01-15T23:59:00+02:00", time.Date(2024, 1, 15, 21, 59, 0, 0, time.UTC), false},
		{"CompactOffset", "2024-01-15T23:59:00-0500", time.Date(2024, 1, 16, 4, 59, 0, 0, time.UTC), false},
		{"FractionalSeconds", "2024-01-15T23:59:00.123Z", time.Time{}, true},
		{"DateOnly", "2024-01-15", time.Time{}, true},
		{"MissingZone", "2024-01-15T23:59:00", time.Time{}, true},
		{"Garbage", "yesterday", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	type holder struct {
		Required Timestamp  `json:"required"`
		Optional *Timestamp `json:"optional,omitempty"`
	}

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"required":"2024-03-01T08:00:00Z","optional":null}`), &h))
	assert.Nil(t, h.Optional)
	assert.Equal(t, 2024, h.Required.Year())

	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"required":"2024-03-01T08:00:00Z"}`, string(data))

	err = json.Unmarshal([]byte(`{"required":"2024-03-01T08:00:00Z","optional":"soon"}`), &h)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"required":1709280000}`), &h)
	assert.Error(t, err)
}
