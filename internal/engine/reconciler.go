package engine

import (
	"fmt"
	"log/slog"

	"prwatch/internal/core"
)

// Reconciler compares each poll's pull request list against the previous
// snapshot and produces notification events plus an updated snapshot.
//
// It is driven by exactly one goroutine (the poller), so it needs no internal
// locking: the diff logic assumes one "previous" and one "current" state per
// cycle and overlapping reconciliations are never allowed.
type Reconciler struct {
	store   core.SnapshotStore
	markers *Markers
	logger  *slog.Logger

	prev      *core.Snapshot
	baselined bool
}

// NewReconciler loads the persisted snapshot and returns a reconciler whose
// first cycle will be a baseline: state is recorded but no events fire, so a
// restart never causes a notification storm.
func NewReconciler(store core.SnapshotStore, markers *Markers, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:   store,
		markers: markers,
		logger:  logger,
		prev:    store.Load(),
	}
}

// Reconcile runs one cycle against the given pull request list. It returns
// the notification events for this cycle and persists the updated snapshot.
// A persistence failure is logged, never fatal: the events still fire and the
// next cycle writes the then-current state anyway.
func (r *Reconciler) Reconcile(prs []core.PullRequest) []core.Event {
	next := core.NewSnapshot()
	for _, pr := range prs {
		next.Seen[pr.URL] = struct{}{}
		next.CommentCounts[pr.URL] = pr.CommentCount
		next.ReviewStates[pr.URL] = pr.ReviewDecision
		next.CIStates[pr.URL] = pr.CI
	}

	var events []core.Event
	if r.baselined {
		events = r.diff(prs)
	} else {
		r.baselined = true
		r.logger.Info("baseline cycle recorded", "open_prs", len(prs))
	}

	r.prev = next
	if err := r.store.Save(next); err != nil {
		r.logger.Error("snapshot save failed, retrying next cycle", "error", err)
	}
	return events
}

// diff computes the four-axis comparison of spec'd state: membership, review
// decision, CI state and comment count.
func (r *Reconciler) diff(prs []core.PullRequest) []core.Event {
	var events []core.Event

	for _, pr := range prs {
		if _, seen := r.prev.Seen[pr.URL]; !seen {
			events = append(events, newPREvent(pr))
			r.markers.MarkNewPR(pr.URL)
			// A PR that just appeared has no prior state to diff against;
			// comment deltas are still handled below.
			continue
		}

		if ev, ok := r.reviewTransition(pr); ok {
			events = append(events, ev)
		}
		if ev, ok := r.ciTransition(pr); ok {
			events = append(events, ev)
		}
	}

	// Comment deltas apply to every currently open PR, including ones that
	// just appeared (their old count defaults to zero).
	for _, pr := range prs {
		old := r.prev.CommentCounts[pr.URL]
		if delta := pr.CommentCount - old; delta > 0 {
			events = append(events, newCommentsEvent(pr, delta))
			r.markers.MarkNewComments(pr.URL)
		}
	}

	return events
}

// reviewTransition reports a review decision change. Only transitions to a
// non-empty value that differs from the stored one count; of those, only
// APPROVED and CHANGES_REQUESTED are user-facing, the rest update state
// silently.
func (r *Reconciler) reviewTransition(pr core.PullRequest) (core.Event, bool) {
	old := r.prev.ReviewStates[pr.URL]
	if pr.ReviewDecision == "" || pr.ReviewDecision == old {
		return core.Event{}, false
	}
	r.markers.FlagUnseen()
	switch pr.ReviewDecision {
	case core.ReviewApproved:
		return reviewEvent(pr, core.EventReviewApproved, "PR Approved"), true
	case core.ReviewChangesRequested:
		return reviewEvent(pr, core.EventReviewChangesRequested, "Changes Requested"), true
	}
	return core.Event{}, false
}

// ciTransition reports a CI aggregate change. The old value must exist, which
// suppresses an event the first time CI data shows up for a PR, and only
// transitions landing on passing or failing are surfaced.
func (r *Reconciler) ciTransition(pr core.PullRequest) (core.Event, bool) {
	old := r.prev.CIStates[pr.URL]
	if old == "" || pr.CI == old {
		return core.Event{}, false
	}
	r.markers.FlagUnseen()
	switch pr.CI {
	case core.CIPassing:
		return ciEvent(pr, core.EventCIPassing, "CI Passing"), true
	case core.CIFailing:
		return ciEvent(pr, core.EventCIFailing, "CI Failing"), true
	}
	return core.Event{}, false
}

func subtitle(pr core.PullRequest) string {
	return fmt.Sprintf("%s#%d", pr.RepoShort(), pr.Number)
}

func newPREvent(pr core.PullRequest) core.Event {
	return core.Event{
		Kind:     core.EventNewPR,
		URL:      pr.URL,
		Title:    "New PR",
		Subtitle: subtitle(pr),
		Message:  fmt.Sprintf("%s (by @%s)", pr.Title, pr.Author),
		Count:    1,
	}
}

func reviewEvent(pr core.PullRequest, kind core.EventKind, title string) core.Event {
	return core.Event{
		Kind:     kind,
		URL:      pr.URL,
		Title:    title,
		Subtitle: subtitle(pr),
		Message:  pr.Title,
		Count:    1,
	}
}

func ciEvent(pr core.PullRequest, kind core.EventKind, title string) core.Event {
	return core.Event{
		Kind:     kind,
		URL:      pr.URL,
		Title:    title,
		Subtitle: subtitle(pr),
		Message:  pr.Title,
		Count:    1,
	}
}

func newCommentsEvent(pr core.PullRequest, delta int) core.Event {
	noun := "comments"
	if delta == 1 {
		noun = "comment"
	}
	return core.Event{
		Kind:     core.EventNewComments,
		URL:      pr.URL,
		Title:    fmt.Sprintf("New %s on PR", noun),
		Subtitle: subtitle(pr),
		Message:  fmt.Sprintf("%d new %s: %s", delta, noun, pr.Title),
		Count:    delta,
	}
}
