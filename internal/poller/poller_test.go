package poller

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"prwatch/internal/config"
	"prwatch/internal/core"
	"prwatch/internal/engine"
	"prwatch/internal/github"
	"prwatch/internal/notify"
	"prwatch/mocks"
)

type memStore struct {
	snap *core.Snapshot
}

func (m *memStore) Load() *core.Snapshot {
	if m.snap == nil {
		return core.NewSnapshot()
	}
	return m.snap
}

func (m *memStore) Save(s *core.Snapshot) error {
	m.snap = s
	return nil
}

func newTestPoller(t *testing.T, source core.PRSource, cfg *config.Config) *Poller {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	markers := engine.NewMarkers()
	rec := engine.NewReconciler(&memStore{}, markers, logger)
	fetcher := github.NewFetcher(source, logger)

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	disp := notify.NewDispatcher(notifier, false, logger)
	t.Cleanup(disp.Stop)

	load := func() (*config.Config, error) { return cfg, nil }
	return New(load, source, fetcher, rec, markers, disp, logger)
}

func TestRunCyclePublishesPullRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)

	pr := core.PullRequest{URL: "https://github.com/acme/widget/pull/1", Repo: "acme/widget", Number: 1, Title: "one", Author: "doc"}
	source.EXPECT().CurrentUser(gomock.Any()).Return("doc", nil)
	source.EXPECT().ListAuthored(gomock.Any(), "acme/widget", "doc").Return([]core.PullRequest{pr}, nil)
	source.EXPECT().ListReviewRequested(gomock.Any(), "acme/widget", "doc").Return(nil, nil)

	cfg := &config.Config{Repos: []string{"acme/widget"}, PollIntervalSeconds: 30}
	p := newTestPoller(t, source, cfg)

	interval := p.runCycle(context.Background())

	assert.Equal(t, cfg.PollInterval(), interval)
	got := p.PullRequests()
	require.Len(t, got, 1)
	assert.Equal(t, pr.URL, got[0].URL)
}

func TestRunCycleCachesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)

	source.EXPECT().CurrentUser(gomock.Any()).Return("doc", nil).Times(1)
	source.EXPECT().ListAuthored(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	source.EXPECT().ListReviewRequested(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	p := newTestPoller(t, source, &config.Config{Repos: []string{"acme/widget"}})
	p.runCycle(context.Background())
	p.runCycle(context.Background())
}

func TestRunCycleIdentityFailureEmptiesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)

	source.EXPECT().CurrentUser(gomock.Any()).Return("", errors.New("bad token")).Times(1)
	source.EXPECT().CurrentUser(gomock.Any()).Return("doc", nil).Times(1)
	source.EXPECT().ListAuthored(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	source.EXPECT().ListReviewRequested(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	p := newTestPoller(t, source, &config.Config{Repos: []string{"acme/widget"}})
	p.setPRs([]core.PullRequest{{URL: "stale"}})

	p.runCycle(context.Background())
	assert.Empty(t, p.PullRequests(), "failed lookup must not leave stale rows behind")

	// next cycle retries the lookup instead of caching the failure
	p.runCycle(context.Background())
}

func TestRunCycleConfigFailureKeepsDefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)
	p := newTestPoller(t, source, nil)
	p.loadConfig = func() (*config.Config, error) { return nil, errors.New("unreadable") }

	interval := p.runCycle(context.Background())
	assert.Equal(t, config.DefaultPollInterval, interval)
}

func TestRunCycleRecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)
	p := newTestPoller(t, source, nil)
	p.loadConfig = func() (*config.Config, error) { panic("boom") }

	assert.NotPanics(t, func() { p.runCycle(context.Background()) })
}

func TestRefreshNowCoalescesAndClearsMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPRSource(ctrl)
	p := newTestPoller(t, source, &config.Config{})

	p.markers.MarkNewPR("https://github.com/acme/widget/pull/1")
	require.True(t, p.markers.HasUnseen())

	p.RefreshNow()
	p.RefreshNow()
	p.RefreshNow()

	assert.False(t, p.markers.HasUnseen(), "refresh clears markers before the fetch lands")
	assert.Len(t, p.refresh, 1, "pending refreshes coalesce into one")
}
