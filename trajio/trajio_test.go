package trajio

import (
	"bytes"
	"testing"

	"github.com/rmera/gouff/optimize"
	"github.com/stretchr/testify/require"
)

func sampleTrajectory() []optimize.Progress {
	return []optimize.Progress{
		{Iteration: 0, Energy: 12.5, GradRMS: 1.1, Positions: []float64{0, 0, 0, 1, 1, 1}},
		{Iteration: 1, Energy: 9.25, GradRMS: 0.4, Positions: nil},
		{Iteration: 3, Energy: 9.1, GradRMS: 0.05, Positions: []float64{0.1, 0.2, 0.3}},
	}
}

func TestRoundTrip(t *testing.T) {
	traj := sampleTrajectory()

	var buf bytes.Buffer
	require.NoError(t, WriteCompressed(&buf, traj))

	got, err := ReadCompressed(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(traj))
	for i := range traj {
		require.Equal(t, traj[i].Iteration, got[i].Iteration)
		require.Equal(t, traj[i].Energy, got[i].Energy)
		require.Equal(t, traj[i].GradRMS, got[i].GradRMS)
		require.Equal(t, traj[i].Positions, got[i].Positions)
	}
}

func TestRoundTripEmptyTrajectory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCompressed(&buf, nil))

	got, err := ReadCompressed(&buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadCompressedRejectsGarbage(t *testing.T) {
	_, err := ReadCompressed(bytes.NewReader([]byte("not a zstd stream")))
	require.Error(t, err)
}
