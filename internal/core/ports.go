package core

import "context"

// PRSource defines the contract with the remote pull request data source.
// Both list operations are bounded to 50 results per repository.
//
//go:generate mockgen -destination=../../mocks/mock_source.go -package=mocks . PRSource
type PRSource interface {
	// CurrentUser resolves the login of the authenticated user.
	CurrentUser(ctx context.Context) (string, error)
	// ListAuthored returns open pull requests in repo authored by user.
	ListAuthored(ctx context.Context, repo, user string) ([]PullRequest, error)
	// ListReviewRequested returns open pull requests in repo where user is a
	// requested reviewer.
	ListReviewRequested(ctx context.Context, repo, user string) ([]PullRequest, error)
}

// Notifier delivers a single desktop notification.
//
//go:generate mockgen -destination=../../mocks/mock_notifier.go -package=mocks . Notifier
type Notifier interface {
	Notify(ctx context.Context, title, subtitle, message string, playSound bool) error
}

// SnapshotStore persists the reconciliation snapshot between process runs.
// Load never fails hard: a missing or unreadable snapshot degrades to an
// empty one. Save must replace the previous snapshot atomically.
type SnapshotStore interface {
	Load() *Snapshot
	Save(s *Snapshot) error
}
