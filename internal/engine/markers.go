// Package engine implements the state reconciliation at the core of the
// notifier: diffing successive snapshots of remote pull request state and
// deciding which changes are worth a notification.
package engine

import "sync"

// Markers tracks which pull requests are "new" or "have new comments" since
// the last acknowledgment. They live for the process lifetime only and drive
// the badge and per-row activity glyphs; the persisted snapshot is what
// prevents duplicate notifications.
//
// Markers are mutated both by the poll loop and by user-action handlers, so
// all access goes through the mutex.
type Markers struct {
	mu          sync.Mutex
	newPRs      map[string]struct{}
	newComments map[string]struct{}
	unseen      bool
}

// NewMarkers returns an empty marker set.
func NewMarkers() *Markers {
	return &Markers{
		newPRs:      make(map[string]struct{}),
		newComments: make(map[string]struct{}),
	}
}

// MarkNewPR records url as newly appeared and raises the badge.
func (m *Markers) MarkNewPR(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newPRs[url] = struct{}{}
	m.unseen = true
}

// MarkNewComments records url as having fresh comments and raises the badge.
func (m *Markers) MarkNewComments(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newComments[url] = struct{}{}
	m.unseen = true
}

// FlagUnseen raises the badge without marking a specific row. Review and CI
// transitions use this: they notify but carry no per-row glyph.
func (m *Markers) FlagUnseen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unseen = true
}

// MarkAllSeen clears both marker sets and lowers the badge.
func (m *Markers) MarkAllSeen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.newPRs)
	clear(m.newComments)
	m.unseen = false
}

// Acknowledge clears the markers for a single url, typically because the
// user opened that pull request. The badge lowers only once both marker sets
// are empty.
func (m *Markers) Acknowledge(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.newPRs, url)
	delete(m.newComments, url)
	if len(m.newPRs) == 0 && len(m.newComments) == 0 {
		m.unseen = false
	}
}

// HasUnseen reports whether the badge should show.
func (m *Markers) HasUnseen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unseen
}

// IsNew reports whether url appeared since the last acknowledgment.
func (m *Markers) IsNew(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.newPRs[url]
	return ok
}

// HasNewComments reports whether url gained comments since the last
// acknowledgment.
func (m *Markers) HasNewComments(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.newComments[url]
	return ok
}
