// Package menu turns the reconciled pull request list into ordered display
// rows for tray frontends and the terminal UI.
package menu

import (
	"prwatch/internal/core"
)

// Status glyphs. Draft overrides CI state; otherwise severity picks the color.
const (
	GlyphDraft   = "⚫"     // ⚫
	GlyphFailing = "\U0001f534" // 🔴
	GlyphPassing = "\U0001f7e2" // 🟢
	GlyphPending = "\U0001f7e1" // 🟡
)

// Activity glyphs, in priority order.
const (
	GlyphNew      = "\U0001f195" // 🆕
	GlyphComments = "\U0001f4ac" // 💬
	GlyphApproved = "\u2705"     // ✅
	GlyphChanges  = "\u274c"     // ❌
	GlyphNone     = "    "       // blank placeholder keeps columns aligned
)

// Markers is the view the renderer needs of the unseen-marker state.
type Markers interface {
	IsNew(url string) bool
	HasNewComments(url string) bool
	HasUnseen() bool
}

// Row is one rendered menu line.
type Row struct {
	StatusGlyph   string `json:"status"`
	ActivityGlyph string `json:"activity"`
	Author        string `json:"author"`
	Repo          string `json:"repo"`
	Title         string `json:"title"`
	URL           string `json:"url"`
}

// Section groups rows by membership reason.
type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Menu is the full rendered state handed to a frontend.
type Menu struct {
	Sections  []Section `json:"sections"`
	Total     int       `json:"total"`
	HasUnseen bool      `json:"has_unseen"`
}

// StatusGlyph picks the row's status indicator: drafts are always neutral
// regardless of CI, then failing beats passing beats pending.
func StatusGlyph(pr core.PullRequest) string {
	if pr.IsDraft {
		return GlyphDraft
	}
	switch pr.CI {
	case core.CIFailing:
		return GlyphFailing
	case core.CIPassing:
		return GlyphPassing
	default:
		return GlyphPending
	}
}

// ActivityGlyph picks the row's activity indicator. New beats comments beats
// the review decision.
func ActivityGlyph(pr core.PullRequest, markers Markers) string {
	switch {
	case markers.IsNew(pr.URL):
		return GlyphNew
	case markers.HasNewComments(pr.URL):
		return GlyphComments
	case pr.ReviewDecision == core.ReviewApproved:
		return GlyphApproved
	case pr.ReviewDecision == core.ReviewChangesRequested:
		return GlyphChanges
	default:
		return GlyphNone
	}
}

// Build renders the menu: an authored section followed by a review-requested
// section, preserving the fetcher's ordering within each.
func Build(prs []core.PullRequest, markers Markers) Menu {
	var authored, requested []Row
	for _, pr := range prs {
		row := Row{
			StatusGlyph:   StatusGlyph(pr),
			ActivityGlyph: ActivityGlyph(pr, markers),
			Author:        pr.Author,
			Repo:          pr.RepoShort(),
			Title:         pr.Title,
			URL:           pr.URL,
		}
		if pr.Reason == core.ReasonAuthor {
			authored = append(authored, row)
		} else {
			requested = append(requested, row)
		}
	}

	m := Menu{
		Total:     len(prs),
		HasUnseen: markers.HasUnseen(),
	}
	if len(authored) > 0 {
		m.Sections = append(m.Sections, Section{Title: "My PRs", Rows: authored})
	}
	if len(requested) > 0 {
		m.Sections = append(m.Sections, Section{Title: "Review Requested", Rows: requested})
	}
	return m
}
