package db

import (
	"context"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_NoURL(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}

func TestParseResultInput_Normalize(t *testing.T) {
	t.Run("computes hash from text", func(t *testing.T) {
		in := &ParseResultInput{Record: &types.ResumeRecord{}, SourceText: "Jane Doe"}
		require.NoError(t, in.normalize())
		assert.Equal(t, HashContent("Jane Doe"), in.SourceHash)
	})

	t.Run("keeps explicit hash", func(t *testing.T) {
		in := &ParseResultInput{Record: &types.ResumeRecord{}, SourceText: "Jane Doe", SourceHash: "abc"}
		require.NoError(t, in.normalize())
		assert.Equal(t, "abc", in.SourceHash)
	})

	t.Run("requires record", func(t *testing.T) {
		in := &ParseResultInput{SourceText: "Jane Doe"}
		assert.ErrorIs(t, in.normalize(), ErrInvalidInput)
	})

	t.Run("requires text or hash", func(t *testing.T) {
		in := &ParseResultInput{Record: &types.ResumeRecord{}}
		assert.ErrorIs(t, in.normalize(), ErrInvalidInput)
	})
}

func TestSaveParseResult_NilInput(t *testing.T) {
	db := &DB{}
	_, err := db.SaveParseResult(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, DefaultListLimit, 0},
		{"negative", -5, -3, DefaultListLimit, 0},
		{"within bounds", 10, 20, 10, 20},
		{"capped", 1000, 0, MaxListLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ClampPage(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestHashContent(t *testing.T) {
	assert.Len(t, HashContent("x"), 64)
	assert.Equal(t, HashContent("x"), HashContent("x"))
	assert.NotEqual(t, HashContent("x"), HashContent("y"))
}
