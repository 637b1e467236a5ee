package chemplot

import (
	"testing"

	"github.com/rmera/gouff/optimize"
	"github.com/stretchr/testify/require"
)

func sampleTrajectory() []optimize.Progress {
	return []optimize.Progress{
		{Iteration: 0, Energy: 42.0, GradRMS: 3.2},
		{Iteration: 1, Energy: 10.5, GradRMS: 1.1},
		{Iteration: 2, Energy: 9.9, GradRMS: 0.02},
	}
}

func TestConvergenceBuildsPlot(t *testing.T) {
	p, err := Convergence(sampleTrajectory())
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestConvergenceRejectsEmptyTrajectory(t *testing.T) {
	_, err := Convergence(nil)
	require.Error(t, err)
}

func TestAbsLogFloorsNearZero(t *testing.T) {
	require.Equal(t, 1e-12, absLog(0))
	require.Equal(t, 5.0, absLog(-5.0))
}
