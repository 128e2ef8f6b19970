package github

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"prwatch/internal/core"
	"prwatch/mocks"
)

func fetcherLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func fetchPR(url, repo string, reason core.Reason, updated time.Time) core.PullRequest {
	return core.PullRequest{
		URL:       url,
		Repo:      repo,
		Number:    1,
		Title:     "t",
		Author:    "a",
		UpdatedAt: updated,
		Reason:    reason,
	}
}

func TestFetchAllAuthorReasonWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)
	now := time.Now()

	authored := fetchPR("u1", "acme/widget", core.ReasonAuthor, now)
	alsoRequested := fetchPR("u1", "acme/widget", core.ReasonReviewer, now)
	requestedOnly := fetchPR("u2", "acme/widget", core.ReasonReviewer, now.Add(-time.Minute))

	src.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").
		Return([]core.PullRequest{authored}, nil)
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").
		Return([]core.PullRequest{alsoRequested, requestedOnly}, nil)

	f := NewFetcher(src, fetcherLogger())
	got := f.FetchAll(context.Background(), []string{"acme/widget"}, "doc")

	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].URL)
	assert.Equal(t, core.ReasonAuthor, got[0].Reason)
	assert.Equal(t, "u2", got[1].URL)
	assert.Equal(t, core.ReasonReviewer, got[1].Reason)
}

func TestFetchAllSortsByUpdatedAtDescending(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)
	now := time.Now()

	old := fetchPR("u-old", "acme/widget", core.ReasonAuthor, now.Add(-time.Hour))
	fresh := fetchPR("u-fresh", "acme/gadget", core.ReasonAuthor, now)

	src.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").Return([]core.PullRequest{old}, nil)
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").Return(nil, nil)
	src.EXPECT().ListAuthored(gomock.Any(), "acme/gadget", "doc").Return([]core.PullRequest{fresh}, nil)
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/gadget", "doc").Return(nil, nil)

	f := NewFetcher(src, fetcherLogger())
	got := f.FetchAll(context.Background(), []string{"acme/widget", "acme/gadget"}, "doc")

	require.Len(t, got, 2)
	assert.Equal(t, "u-fresh", got[0].URL)
	assert.Equal(t, "u-old", got[1].URL)
}

func TestFetchAllFailedRepoContributesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)
	now := time.Now()

	src.EXPECT().ListAuthored(gomock.Any(), "acme/broken", "doc").
		Return(nil, errors.New("api unreachable"))
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/broken", "doc").
		Return(nil, context.DeadlineExceeded)
	src.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").
		Return([]core.PullRequest{fetchPR("u1", "acme/widget", core.ReasonAuthor, now)}, nil)
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").Return(nil, nil)

	f := NewFetcher(src, fetcherLogger())
	got := f.FetchAll(context.Background(), []string{"acme/broken", "acme/widget"}, "doc")

	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].URL)
}

func TestFetchAllPartialRepoFailureKeepsOtherQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)
	now := time.Now()

	src.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").
		Return(nil, errors.New("rate limited"))
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").
		Return([]core.PullRequest{fetchPR("u1", "acme/widget", core.ReasonReviewer, now)}, nil)

	f := NewFetcher(src, fetcherLogger())
	got := f.FetchAll(context.Background(), []string{"acme/widget"}, "doc")

	require.Len(t, got, 1)
	assert.Equal(t, core.ReasonReviewer, got[0].Reason)
}

func TestFetchAllDerivesAggregateCI(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)

	pr := fetchPR("u1", "acme/widget", core.ReasonAuthor, time.Now())
	pr.Checks = []core.CheckRecord{
		{Kind: core.CheckKindRun, Status: "IN_PROGRESS"},
		{Kind: core.CheckKindRun, Status: "COMPLETED", Conclusion: "FAILURE"},
	}

	src.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").Return([]core.PullRequest{pr}, nil)
	src.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").Return(nil, nil)

	f := NewFetcher(src, fetcherLogger())
	got := f.FetchAll(context.Background(), []string{"acme/widget"}, "doc")

	require.Len(t, got, 1)
	assert.Equal(t, core.CIFailing, got[0].CI)
}

func TestFetchAllEmptyRepoList(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPRSource(ctrl)

	f := NewFetcher(src, fetcherLogger())
	assert.Empty(t, f.FetchAll(context.Background(), nil, "doc"))
}
