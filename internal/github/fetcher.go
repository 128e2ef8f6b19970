package github

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"prwatch/internal/core"
)

const (
	// Budget for one repository's pair of queries.
	perRepoTimeout = 30 * time.Second
	// Hard deadline for the whole fetch; repositories that miss it
	// contribute nothing and partial results are used as-is.
	fetchTimeout = 60 * time.Second
)

// Fetcher produces the deduplicated union of authored and review-requested
// open pull requests across all configured repositories.
type Fetcher struct {
	source core.PRSource
	logger *slog.Logger
}

// NewFetcher creates a fetcher over the given pull request source.
func NewFetcher(source core.PRSource, logger *slog.Logger) *Fetcher {
	return &Fetcher{source: source, logger: logger}
}

// FetchAll queries every repository concurrently, merges the results and
// derives the aggregate CI state for each pull request. A repository whose
// queries fail or time out contributes zero results; the fetch as a whole
// never fails.
//
// The merged list is ordered by last-updated time, newest first, with ties
// keeping repository order (stable sort).
func (f *Fetcher) FetchAll(ctx context.Context, repos []string, user string) []core.PullRequest {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	results := make([][]core.PullRequest, len(repos))
	var g errgroup.Group
	for i, repo := range repos {
		g.Go(func() error {
			rctx, rcancel := context.WithTimeout(ctx, perRepoTimeout)
			defer rcancel()
			results[i] = f.fetchRepo(rctx, repo, user)
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{})
	var merged []core.PullRequest
	for _, prs := range results {
		for _, pr := range prs {
			if _, dup := seen[pr.URL]; dup {
				continue
			}
			seen[pr.URL] = struct{}{}
			pr.CI = core.AggregateCI(pr.Checks)
			merged = append(merged, pr)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].UpdatedAt.After(merged[j].UpdatedAt)
	})
	return merged
}

// fetchRepo runs the two queries for one repository, author results first so
// that a pull request matching both reasons keeps the author reason.
func (f *Fetcher) fetchRepo(ctx context.Context, repo, user string) []core.PullRequest {
	var prs []core.PullRequest
	urls := make(map[string]struct{})

	authored, err := f.source.ListAuthored(ctx, repo, user)
	if err != nil {
		f.logger.Error("authored query failed", "repo", repo, "error", err)
	}
	for _, pr := range authored {
		urls[pr.URL] = struct{}{}
		prs = append(prs, pr)
	}

	requested, err := f.source.ListReviewRequested(ctx, repo, user)
	if err != nil {
		f.logger.Error("review-requested query failed", "repo", repo, "error", err)
	}
	for _, pr := range requested {
		if _, dup := urls[pr.URL]; dup {
			continue
		}
		urls[pr.URL] = struct{}{}
		prs = append(prs, pr)
	}

	return prs
}
