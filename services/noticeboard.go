// services/noticeboard.go
package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// The notice board is a synthetic data generator, not a persisted feed.
// Notes live in memory only; a restart (or the daily regeneration) throws
// the current set away and samples a fresh one.

const AllResolvedMessage = "All reminders resolved!"

var noteBranches = []string{
	"Toronto, Canada",
	"Istanbul, Turkey",
	"Glasgow, United Kingdom",
}

var noteIssues = []string{
	"AC service needed",
	"Flour level is very low",
	"New staff required",
	"Freezer not working properly",
	"Ice cream stock low",
	"Dishwasher leaking",
	"Oven temperature irregular",
	"Shortage of cleaning supplies",
	"POS system lagging",
	"Restroom maintenance needed",
}

type Note struct {
	ID        string    `json:"id"`
	Branch    string    `json:"branch"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type NoticeBoard struct {
	mu    sync.Mutex
	rng   *rand.Rand
	notes []Note
}

func NewNoticeBoard() *NoticeBoard {
	return NewNoticeBoardWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewNoticeBoardWithRand takes the random source so tests can pin it.
func NewNoticeBoardWithRand(rng *rand.Rand) *NoticeBoard {
	b := &NoticeBoard{rng: rng}
	b.Regenerate()
	return b
}

// Regenerate replaces the whole note set: 1-3 notes for distinct branches,
// each note carrying 2-3 distinct issues and a creation time within the
// past hour.
func (b *NoticeBoard) Regenerate() {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := b.rng.Intn(len(noteBranches)) + 1

	shuffled := make([]string, len(noteBranches))
	copy(shuffled, noteBranches)
	b.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	now := time.Now()
	b.notes = make([]Note, 0, count)
	for i, branch := range shuffled[:count] {
		b.notes = append(b.notes, Note{
			ID:        fmt.Sprintf("note-%d", i+1),
			Branch:    branch,
			Message:   b.randomIssues(),
			CreatedAt: now.Add(-time.Duration(b.rng.Int63n(int64(time.Hour)))),
		})
	}
}

// randomIssues joins 2-3 distinct issue strings with ". " and a trailing
// period. Caller holds the lock.
func (b *NoticeBoard) randomIssues() string {
	count := b.rng.Intn(2) + 2

	picked := make([]string, 0, count)
	seen := make(map[string]bool)
	for len(picked) < count {
		issue := noteIssues[b.rng.Intn(len(noteIssues))]
		if seen[issue] {
			continue
		}
		seen[issue] = true
		picked = append(picked, issue)
	}

	message := picked[0]
	for _, issue := range picked[1:] {
		message += ". " + issue
	}
	return message + "."
}

// Notes returns a snapshot of the unresolved notes.
func (b *NoticeBoard) Notes() []Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Note, len(b.notes))
	copy(out, b.notes)
	return out
}

// Resolve removes exactly the note with the given id, leaving the order
// and content of the others untouched. Returns false for an unknown id.
func (b *NoticeBoard) Resolve(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, note := range b.notes {
		if note.ID == id {
			b.notes = append(b.notes[:i], b.notes[i+1:]...)
			return true
		}
	}
	return false
}
