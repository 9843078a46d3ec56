package state

import (
	"image"
	"log"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is used when a non-usable limit is requested.
const DefaultHistoryLimit = 50

// Entry is an immutable snapshot of the surface at a committed point in time.
type Entry struct {
	ID      string
	Seq     uint64
	Kind    OpKind
	Created time.Time
	pixels  *image.RGBA
}

// Pixels returns the snapshot. The image is shared with the history and
// must be treated as read-only.
func (e Entry) Pixels() *image.RGBA {
	return e.pixels
}

// History is a bounded linear undo stack of surface snapshots. Appending
// after an undo discards every entry beyond the cursor; there is no redo.
type History struct {
	entries []Entry
	cursor  int
	limit   int
	clock   Clock
}

// NewHistory starts a history holding the initial blank snapshot at cursor 0.
// The history takes ownership of the image.
func NewHistory(initial *image.RGBA, limit int) *History {
	if limit < 2 {
		limit = DefaultHistoryLimit
	}
	h := &History{
		entries: make([]Entry, 0, limit),
		limit:   limit,
	}
	h.entries = append(h.entries, h.newEntry(OpInitial, initial))
	return h
}

func (h *History) newEntry(kind OpKind, pixels *image.RGBA) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Seq:     h.clock.Tick(),
		Kind:    kind,
		Created: time.Now(),
		pixels:  pixels,
	}
}

// Append truncates any entries after the cursor, appends a snapshot and
// moves the cursor onto it. The oldest entries are evicted past the limit.
func (h *History) Append(kind OpKind, pixels *image.RGBA) Entry {
	if h.cursor < len(h.entries)-1 {
		dropped := len(h.entries) - 1 - h.cursor
		clear(h.entries[h.cursor+1:])
		h.entries = h.entries[:h.cursor+1]
		log.Printf("[HISTORY] Discarded %d undone entries", dropped)
	}

	e := h.newEntry(kind, pixels)
	h.entries = append(h.entries, e)
	h.cursor = len(h.entries) - 1

	if excess := len(h.entries) - h.limit; excess > 0 {
		clear(h.entries[:excess])
		h.entries = h.entries[excess:]
		h.cursor -= excess
		log.Printf("[HISTORY] Evicted %d oldest entries (limit %d)", excess, h.limit)
	}
	return e
}

// CanUndo reports whether an earlier entry exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// Undo moves the cursor back one entry and returns it. It returns false,
// leaving the cursor alone, when already at the oldest entry.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Current returns the entry at the cursor.
func (h *History) Current() Entry {
	return h.entries[h.cursor]
}

// Cursor returns the index of the displayed entry.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of stored entries, including any undone ones.
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the maximum number of stored entries.
func (h *History) Limit() int {
	return h.limit
}

// Entry returns the entry at index i.
func (h *History) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	return h.entries[i], true
}
