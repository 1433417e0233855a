package astar_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdrpinto/amphipod/astar"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_MatchesSearch(t *testing.T) {
	g := grid{w: 4, h: 4, walls: map[point]bool{{1, 1}: true, {2, 1}: true}}
	start, goal := point{0, 0}, point{3, 3}

	want, err := astar.Search(context.Background(), g, start, manhattanTo(goal), isPoint(goal), astar.WithWorkers(1))
	require.NoError(t, err)

	stepper := astar.NewStepper(context.Background(), g, start, manhattanTo(goal), isPoint(goal), astar.WithWorkers(3))
	defer stepper.Close()

	var last astar.StepSnapshot[point]
	for i := 0; i < 100 && !last.Done; i++ {
		last, err = stepper.Step()
		require.NoError(t, err)
		assert.Equal(t, i+1, last.StepIndex)
	}
	require.True(t, last.Done)
	assert.True(t, last.Found)
	assert.Equal(t, want.Path, last.Path)
	assert.Equal(t, want.TotalCost, last.GScore)
	assert.Equal(t, want.ExpandedNodes, last.StepIndex)

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, last, again)
}

func TestStepper_Exhausted(t *testing.T) {
	g := grid{w: 1, h: 1}
	stepper := astar.NewStepper(context.Background(), g, point{0, 0}, manhattanTo(point{5, 5}), isPoint(point{5, 5}))
	defer stepper.Close()

	first, err := stepper.Step()
	require.NoError(t, err)
	assert.False(t, first.Done)
	assert.Equal(t, 1, first.ClosedCount)
	assert.Equal(t, 0, first.OpenCount)

	second, err := stepper.Step()
	require.NoError(t, err)
	assert.True(t, second.Done)
	assert.False(t, second.Found)
	assert.Nil(t, second.Path)
}

func TestStepper_LogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	g := grid{w: 3, h: 3}
	_, err := astar.Search(context.Background(), g, point{0, 0}, manhattanTo(point{2, 2}), isPoint(point{2, 2}),
		astar.WithWorkers(1), astar.WithLogger(logger), astar.WithProgressInterval(1))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "search progress")
	assert.Contains(t, buf.String(), "goal reached")
}
