// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"strings"
	"time"
)

// CIState is the single-value summary of all CI checks on a pull request.
type CIState string

const (
	CIPassing CIState = "passing"
	CIPending CIState = "pending"
	CIFailing CIState = "failing"
)

// Reason records why a pull request is in the watch list.
type Reason string

const (
	ReasonAuthor   Reason = "author"
	ReasonReviewer Reason = "reviewer"
)

// Review decisions that are surfaced to the user. A pull request can carry
// other decision values; those update stored state silently.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
)

// CheckKind tags the two shapes a status rollup entry can take.
type CheckKind string

const (
	CheckKindRun           CheckKind = "CheckRun"
	CheckKindStatusContext CheckKind = "StatusContext"
)

// CheckRecord is the normalized form of a single CI check. Check runs carry
// Status and Conclusion; legacy status contexts carry only State. Values are
// canonicalized to upper case at the API boundary.
type CheckRecord struct {
	Kind       CheckKind
	Status     string // check runs: COMPLETED, IN_PROGRESS, QUEUED, ...
	Conclusion string // check runs: SUCCESS, FAILURE, NEUTRAL, SKIPPED, ...
	State      string // status contexts: SUCCESS, PENDING, FAILURE, ERROR
}

// PullRequest is the ephemeral view of one open pull request, rebuilt on
// every poll. The URL is its identity: globally unique and stable.
type PullRequest struct {
	URL            string
	Repo           string // full name, "owner/name"
	Number         int
	Title          string
	Author         string
	IsDraft        bool
	ReviewDecision string
	Checks         []CheckRecord
	CommentCount   int
	UpdatedAt      time.Time
	Reason         Reason

	// CI is the aggregate check state, derived from Checks by AggregateCI.
	CI CIState
}

// RepoShort returns the repository name without its owner prefix.
func (p PullRequest) RepoShort() string {
	if i := strings.LastIndex(p.Repo, "/"); i >= 0 {
		return p.Repo[i+1:]
	}
	return p.Repo
}

// Snapshot is the durable record of previously observed pull request state,
// used as the diff baseline. All four mappings are keyed by PR URL and are
// replaced wholesale after each reconciliation, so closed PRs leave no stale
// entries behind.
type Snapshot struct {
	Seen          map[string]struct{}
	CommentCounts map[string]int
	ReviewStates  map[string]string
	CIStates      map[string]CIState
}

// NewSnapshot returns an empty snapshot with all mappings initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Seen:          make(map[string]struct{}),
		CommentCounts: make(map[string]int),
		ReviewStates:  make(map[string]string),
		CIStates:      make(map[string]CIState),
	}
}

// EventKind identifies the state transition a notification reports.
type EventKind string

const (
	EventNewPR                  EventKind = "new_pr"
	EventReviewApproved         EventKind = "review_approved"
	EventReviewChangesRequested EventKind = "review_changes_requested"
	EventCIPassing              EventKind = "ci_passing"
	EventCIFailing              EventKind = "ci_failing"
	EventNewComments            EventKind = "new_comments"
)

// Event is a single notification-worthy state change. Events are transient:
// they are handed to the notification sink and never persisted.
type Event struct {
	Kind     EventKind
	URL      string
	Title    string
	Subtitle string
	Message  string
	Count    int // comment delta for EventNewComments, 1 otherwise
}
