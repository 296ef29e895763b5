package services

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCatalog() map[string]bool {
	catalog := make(map[string]bool, len(noteIssues))
	for _, issue := range noteIssues {
		catalog[issue] = true
	}
	return catalog
}

func TestNoticeBoardGeneration(t *testing.T) {
	t.Parallel()

	catalog := issueCatalog()
	board := NewNoticeBoardWithRand(rand.New(rand.NewSource(42)))

	// Each regeneration must honor the same bounds regardless of the draw.
	for round := 0; round < 50; round++ {
		notes := board.Notes()

		require.GreaterOrEqual(t, len(notes), 1)
		require.LessOrEqual(t, len(notes), 3)

		seenBranches := make(map[string]bool)
		for _, note := range notes {
			assert.False(t, seenBranches[note.Branch], "branch %q repeated", note.Branch)
			seenBranches[note.Branch] = true
			assert.Contains(t, noteBranches, note.Branch)

			require.True(t, strings.HasSuffix(note.Message, "."))
			issues := strings.Split(strings.TrimSuffix(note.Message, "."), ". ")
			require.GreaterOrEqual(t, len(issues), 2)
			require.LessOrEqual(t, len(issues), 3)
			seenIssues := make(map[string]bool)
			for _, issue := range issues {
				assert.True(t, catalog[issue], "issue %q not in catalog", issue)
				assert.False(t, seenIssues[issue], "issue %q repeated", issue)
				seenIssues[issue] = true
			}

			age := time.Since(note.CreatedAt)
			assert.GreaterOrEqual(t, age, time.Duration(0))
			assert.Less(t, age, time.Hour+time.Minute)
		}

		board.Regenerate()
	}
}

func TestNoticeBoardResolve(t *testing.T) {
	t.Parallel()

	board := NewNoticeBoardWithRand(rand.New(rand.NewSource(7)))

	// Find a draw with a full board so removal order is observable.
	for len(board.Notes()) < 3 {
		board.Regenerate()
	}
	notes := board.Notes()

	assert.False(t, board.Resolve("note-99"), "unknown id must not resolve")
	require.Len(t, board.Notes(), 3)

	require.True(t, board.Resolve(notes[1].ID))
	remaining := board.Notes()
	require.Len(t, remaining, 2)
	assert.Equal(t, notes[0], remaining[0])
	assert.Equal(t, notes[2], remaining[1])

	require.True(t, board.Resolve(notes[0].ID))
	require.True(t, board.Resolve(notes[2].ID))
	assert.Empty(t, board.Notes())

	assert.False(t, board.Resolve(notes[0].ID), "resolving twice must fail")

	// A regeneration brings a fresh set back.
	board.Regenerate()
	assert.NotEmpty(t, board.Notes())
}
