package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateCI(t *testing.T) {
	run := func(status, conclusion string) CheckRecord {
		return CheckRecord{Kind: CheckKindRun, Status: status, Conclusion: conclusion}
	}
	statusCtx := func(state string) CheckRecord {
		return CheckRecord{Kind: CheckKindStatusContext, State: state}
	}

	tests := []struct {
		name   string
		checks []CheckRecord
		want   CIState
	}{
		{
			name:   "no checks is passing",
			checks: nil,
			want:   CIPassing,
		},
		{
			name:   "all runs successful",
			checks: []CheckRecord{run("COMPLETED", "SUCCESS"), run("COMPLETED", "NEUTRAL"), run("COMPLETED", "SKIPPED")},
			want:   CIPassing,
		},
		{
			name:   "unfinished run downgrades to pending",
			checks: []CheckRecord{run("COMPLETED", "SUCCESS"), run("IN_PROGRESS", "")},
			want:   CIPending,
		},
		{
			name:   "pending then failing is failing",
			checks: []CheckRecord{run("IN_PROGRESS", ""), run("COMPLETED", "FAILURE")},
			want:   CIFailing,
		},
		{
			name:   "failing then pending is failing",
			checks: []CheckRecord{run("COMPLETED", "FAILURE"), run("IN_PROGRESS", "")},
			want:   CIFailing,
		},
		{
			name:   "pending then passing stays pending",
			checks: []CheckRecord{run("QUEUED", ""), run("COMPLETED", "SUCCESS")},
			want:   CIPending,
		},
		{
			name:   "cancelled conclusion fails",
			checks: []CheckRecord{run("COMPLETED", "CANCELLED")},
			want:   CIFailing,
		},
		{
			name:   "status context pending",
			checks: []CheckRecord{statusCtx("SUCCESS"), statusCtx("PENDING")},
			want:   CIPending,
		},
		{
			name:   "status context error fails immediately",
			checks: []CheckRecord{statusCtx("ERROR"), run("IN_PROGRESS", "")},
			want:   CIFailing,
		},
		{
			name:   "mixed shapes all green",
			checks: []CheckRecord{run("COMPLETED", "SUCCESS"), statusCtx("SUCCESS")},
			want:   CIPassing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateCI(tt.checks))
		})
	}
}

func TestPullRequestRepoShort(t *testing.T) {
	assert.Equal(t, "widget", PullRequest{Repo: "acme/widget"}.RepoShort())
	assert.Equal(t, "widget", PullRequest{Repo: "widget"}.RepoShort())
}
