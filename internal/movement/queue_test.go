package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/daydream/internal/world"
)

func TestQueueAllowsOnePending(t *testing.T) {
	terrain := newTerrain(t)
	actor := &testActor{x: 2, y: 2, facing: world.South}
	var q Queue

	first := q.Enqueue(actor, world.East)
	require.NotNil(t, first)
	assert.True(t, q.Pending())

	assert.Nil(t, q.Enqueue(actor, world.North), "second input while pending is ignored")
	assert.Equal(t, world.East, actor.facing, "ignored input does not turn the actor")
	assert.Equal(t, 1, q.Len())

	for i := 0; i < Frames-1; i++ {
		assert.Empty(t, q.Advance(terrain))
		assert.Nil(t, q.Enqueue(actor, world.West))
	}
	finished := q.Advance(terrain)
	require.Len(t, finished, 1)
	assert.Same(t, first, finished[0])
	assert.False(t, q.Pending())
	assert.Equal(t, world.Cell{X: 3, Y: 2}, actor.Cell())

	assert.NotNil(t, q.Enqueue(actor, world.West))
}

func TestQueueBlockedStepHoldsQueueForFullDuration(t *testing.T) {
	terrain := newTerrain(t)
	actor := &testActor{x: 1, y: 1}
	var q Queue

	require.NotNil(t, q.Enqueue(actor, world.West))
	ticks := 0
	for q.Pending() {
		q.Advance(terrain)
		ticks++
	}
	assert.Equal(t, Frames, ticks)
	assert.Equal(t, world.Cell{X: 1, Y: 1}, actor.Cell())
}

func TestQueueAdvanceEmpty(t *testing.T) {
	var q Queue
	assert.Empty(t, q.Advance(newTerrain(t)))
	assert.False(t, q.Pending())
}

func TestQueueOnePendingPerActor(t *testing.T) {
	terrain := newTerrain(t)
	player := &testActor{x: 1, y: 1}
	npc := &testActor{x: 3, y: 1}
	var q Queue

	require.NotNil(t, q.Enqueue(player, world.East))
	require.NotNil(t, q.Enqueue(npc, world.South), "another actor may step at the same time")
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.PendingFor(player))
	assert.True(t, q.PendingFor(npc))
	assert.Nil(t, q.Enqueue(npc, world.West))

	var finished []*Command
	for q.Pending() {
		finished = append(finished, q.Advance(terrain)...)
	}
	require.Len(t, finished, 2)
	assert.Equal(t, world.Cell{X: 2, Y: 1}, player.Cell())
	assert.Equal(t, world.Cell{X: 3, Y: 2}, npc.Cell())
	assert.False(t, q.PendingFor(player))
}

// queueTerrain adds the cells claimed by running steps to the base terrain.
type queueTerrain struct {
	testTerrain
	q *Queue
}

func (t queueTerrain) Occupied(c world.Cell) bool {
	return t.testTerrain.Occupied(c) || t.q.Claimed(c)
}

func TestQueueFirstStepClaimsContestedCell(t *testing.T) {
	var q Queue
	terrain := queueTerrain{testTerrain: newTerrain(t), q: &q}
	a := &testActor{x: 1, y: 1}
	b := &testActor{x: 3, y: 1}

	first := q.Enqueue(a, world.East)
	second := q.Enqueue(b, world.West)
	assert.False(t, q.Claimed(world.Cell{X: 2, Y: 1}), "nothing claimed before the first frame")

	q.Advance(terrain)
	assert.Equal(t, BlockNone, first.Blocked())
	assert.Equal(t, BlockOccupied, second.Blocked())
	assert.True(t, q.Claimed(world.Cell{X: 1, Y: 1}))
	assert.True(t, q.Claimed(world.Cell{X: 2, Y: 1}))
	assert.False(t, q.Claimed(world.Cell{X: 3, Y: 1}), "a blocked step claims nothing")

	for q.Pending() {
		q.Advance(terrain)
	}
	assert.Equal(t, world.Cell{X: 2, Y: 1}, a.Cell())
	assert.Equal(t, world.Cell{X: 3, Y: 1}, b.Cell())
	assert.False(t, q.Claimed(world.Cell{X: 2, Y: 1}))
}
