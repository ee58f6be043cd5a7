package razorpay

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "epoch seconds pass through",
			input: 1700000000,
			want:  1700000000,
		},
		{
			name:  "int64 passes through",
			input: int64(1700000000),
			want:  int64(1700000000),
		},
		{
			name:  "float passes through",
			input: 1700000000.0,
			want:  1700000000.0,
		},
		{
			name:  "numeric string passes through",
			input: "1700000000",
			want:  "1700000000",
		},
		{
			name:  "RFC3339 string converts to epoch seconds",
			input: "2023-01-01T00:00:00Z",
			want:  int64(1672531200),
		},
		{
			name:  "calendar date converts to midnight UTC",
			input: "2023-01-01",
			want:  int64(1672531200),
		},
		{
			name:  "datetime string converts to epoch seconds",
			input: "2023-01-01 10:30:00",
			want:  int64(1672569000),
		},
		{
			name:  "time.Time converts to Unix seconds",
			input: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:  int64(1672531200),
		},
		{
			name:  "unparseable string passes through",
			input: "not-a-date",
			want:  "not-a-date",
		},
		{
			name:  "nil stays nil",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDate(tt.input))
		})
	}
}

func TestNormalizeBoolean(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "true becomes 1", input: true, want: 1},
		{name: "false becomes 0", input: false, want: 0},
		{name: "nil bool pointer stays nil", input: (*bool)(nil), want: nil},
		{name: "bool pointer true becomes 1", input: lo.ToPtr(true), want: 1},
		{name: "bool pointer false becomes 0", input: lo.ToPtr(false), want: 0},
		{name: "zero becomes 0", input: 0, want: 0},
		{name: "nonzero becomes 1", input: 42, want: 1},
		{name: "empty string becomes 0", input: "", want: 0},
		{name: "nonempty string becomes 1", input: "x", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeBoolean(tt.input))
		})
	}
}

func TestNormalizeNotes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  map[string]any
	}{
		{
			name:  "flattens each entry",
			input: Notes{"a": "b", "key": "value"},
			want:  map[string]any{"notes[a]": "b", "notes[key]": "value"},
		},
		{
			name:  "plain string map",
			input: map[string]string{"purpose": "test"},
			want:  map[string]any{"notes[purpose]": "test"},
		},
		{
			name:  "empty map",
			input: Notes{},
			want:  map[string]any{},
		},
		{
			name: "nil",
			want: map[string]any{},
		},
		{
			name:  "typed nil map",
			input: Notes(nil),
			want:  map[string]any{},
		},
		{
			name:  "slice is never flattened",
			input: []string{"a", "b"},
			want:  map[string]any{},
		},
		{
			name:  "scalar is never flattened",
			input: "notes",
			want:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeNotes(tt.input))
		})
	}
}

func TestIsNonNullObject(t *testing.T) {
	assert.True(t, isNonNullObject(map[string]string{}))
	assert.True(t, isNonNullObject(Notes{"a": "b"}))
	assert.False(t, isNonNullObject(nil))
	assert.False(t, isNonNullObject(Notes(nil)))
	assert.False(t, isNonNullObject([]string{}))
	assert.False(t, isNonNullObject("str"))
	assert.False(t, isNonNullObject(42))
}
