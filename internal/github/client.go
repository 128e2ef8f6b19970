// Package github implements the pull request source on top of the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gh "github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"prwatch/internal/core"
)

// Result cap per repository per query, bounding worst-case latency and memory.
const perRepoLimit = 50

// Client is a core.PRSource backed by the GitHub REST API.
type Client struct {
	gh     *gh.Client
	logger *slog.Logger
}

// NewPATClient creates a GitHub client authenticated with a personal access
// token, the auth mode of a single-user desktop tool.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: gh.NewClient(tc), logger: logger}
}

// CurrentUser resolves the login of the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	u, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("resolve authenticated user: %w", err)
	}
	return u.GetLogin(), nil
}

// ListAuthored returns open pull requests in repo authored by user.
func (c *Client) ListAuthored(ctx context.Context, repo, user string) ([]core.PullRequest, error) {
	query := fmt.Sprintf("is:pr is:open repo:%s author:%s", repo, user)
	return c.searchOpen(ctx, repo, query, core.ReasonAuthor)
}

// ListReviewRequested returns open pull requests in repo where user is a
// requested reviewer.
func (c *Client) ListReviewRequested(ctx context.Context, repo, user string) ([]core.PullRequest, error) {
	query := fmt.Sprintf("is:pr is:open repo:%s review-requested:%s", repo, user)
	return c.searchOpen(ctx, repo, query, core.ReasonReviewer)
}

func (c *Client) searchOpen(ctx context.Context, repo, query string, reason core.Reason) ([]core.PullRequest, error) {
	opts := &gh.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: perRepoLimit},
	}
	result, _, err := c.gh.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	prs := make([]core.PullRequest, 0, len(result.Issues))
	for _, issue := range result.Issues {
		if !issue.IsPullRequest() {
			continue
		}
		pr, err := c.hydrate(ctx, repo, issue, reason)
		if err != nil {
			c.logger.Warn("skipping pull request", "url", issue.GetHTMLURL(), "error", err)
			continue
		}
		prs = append(prs, pr)
		if len(prs) >= perRepoLimit {
			break
		}
	}
	return prs, nil
}

// hydrate fills in the fields the search result omits: draft flag, review
// decision and check data.
func (c *Client) hydrate(ctx context.Context, repo string, issue *gh.Issue, reason core.Reason) (core.PullRequest, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return core.PullRequest{}, err
	}

	number := issue.GetNumber()
	pr, _, err := c.gh.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return core.PullRequest{}, fmt.Errorf("get pull request %s#%d: %w", repo, number, err)
	}

	decision, err := c.reviewDecision(ctx, owner, name, number)
	if err != nil {
		c.logger.Warn("review decision unavailable", "repo", repo, "pr", number, "error", err)
		decision = ""
	}

	return core.PullRequest{
		URL:            pr.GetHTMLURL(),
		Repo:           repo,
		Number:         number,
		Title:          pr.GetTitle(),
		Author:         pr.GetUser().GetLogin(),
		IsDraft:        pr.GetDraft(),
		ReviewDecision: decision,
		Checks:         c.checkRecords(ctx, owner, name, pr.GetHead().GetSHA()),
		CommentCount:   issue.GetComments(),
		UpdatedAt:      pr.GetUpdatedAt().Time,
		Reason:         reason,
	}, nil
}

// reviewDecision approximates the overall review decision from individual
// reviews: the latest non-comment review per reviewer counts, any outstanding
// CHANGES_REQUESTED wins over approvals.
func (c *Client) reviewDecision(ctx context.Context, owner, name string, number int) (string, error) {
	reviews, _, err := c.gh.PullRequests.ListReviews(ctx, owner, name, number, &gh.ListOptions{PerPage: 100})
	if err != nil {
		return "", err
	}
	return decideReview(reviews), nil
}

func decideReview(reviews []*gh.PullRequestReview) string {
	latest := make(map[string]string)
	for _, rv := range reviews {
		login := rv.GetUser().GetLogin()
		switch rv.GetState() {
		case "APPROVED", "CHANGES_REQUESTED":
			latest[login] = rv.GetState()
		case "DISMISSED":
			delete(latest, login)
		}
	}

	decision := ""
	for _, state := range latest {
		if state == core.ReviewChangesRequested {
			return core.ReviewChangesRequested
		}
		decision = core.ReviewApproved
	}
	return decision
}

// checkRecords collects both check-run and legacy status-context results for
// the head commit, canonicalized to upper case. Failures here degrade to
// fewer records rather than failing the whole PR.
func (c *Client) checkRecords(ctx context.Context, owner, name, sha string) []core.CheckRecord {
	if sha == "" {
		return nil
	}

	var records []core.CheckRecord

	runs, _, err := c.gh.Checks.ListCheckRunsForRef(ctx, owner, name, sha, &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		c.logger.Warn("check runs unavailable", "repo", owner+"/"+name, "sha", sha, "error", err)
	} else {
		for _, run := range runs.CheckRuns {
			records = append(records, core.CheckRecord{
				Kind:       core.CheckKindRun,
				Status:     strings.ToUpper(run.GetStatus()),
				Conclusion: strings.ToUpper(run.GetConclusion()),
			})
		}
	}

	combined, _, err := c.gh.Repositories.GetCombinedStatus(ctx, owner, name, sha, &gh.ListOptions{PerPage: 100})
	if err != nil {
		c.logger.Warn("commit statuses unavailable", "repo", owner+"/"+name, "sha", sha, "error", err)
	} else {
		for _, st := range combined.Statuses {
			records = append(records, core.CheckRecord{
				Kind:  core.CheckKindStatusContext,
				State: strings.ToUpper(st.GetState()),
			})
		}
	}

	return records
}

func splitRepo(full string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q, want owner/name", full)
	}
	return owner, name, nil
}
