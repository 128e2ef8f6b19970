package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkersLifecycle(t *testing.T) {
	m := NewMarkers()
	assert.False(t, m.HasUnseen())

	m.MarkNewPR("u1")
	m.MarkNewComments("u2")
	assert.True(t, m.HasUnseen())
	assert.True(t, m.IsNew("u1"))
	assert.True(t, m.HasNewComments("u2"))
	assert.False(t, m.IsNew("u2"))

	m.MarkAllSeen()
	assert.False(t, m.HasUnseen())
	assert.False(t, m.IsNew("u1"))
	assert.False(t, m.HasNewComments("u2"))
}

func TestAcknowledgeClearsBadgeOnlyWhenBothSetsEmpty(t *testing.T) {
	m := NewMarkers()
	m.MarkNewPR("u1")
	m.MarkNewComments("u2")

	m.Acknowledge("u1")
	assert.True(t, m.HasUnseen(), "u2 still has new comments")

	m.Acknowledge("u2")
	assert.False(t, m.HasUnseen())
}

func TestAcknowledgeSameURLInBothSets(t *testing.T) {
	m := NewMarkers()
	m.MarkNewPR("u1")
	m.MarkNewComments("u1")

	m.Acknowledge("u1")
	assert.False(t, m.HasUnseen())
	assert.False(t, m.IsNew("u1"))
	assert.False(t, m.HasNewComments("u1"))
}

func TestFlagUnseenWithoutRowMarkers(t *testing.T) {
	// Review and CI transitions raise the badge with no per-row marker;
	// acknowledging any row then lowers it because both sets are empty.
	m := NewMarkers()
	m.FlagUnseen()
	assert.True(t, m.HasUnseen())

	m.Acknowledge("whatever")
	assert.False(t, m.HasUnseen())
}
