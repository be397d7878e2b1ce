package nowplaying

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/expansion"
	"github.com/lmercier/resound/internal/ui/testutil"
)

func expandedState() State {
	return State{
		Track:       &remote.Track{ID: "t1", Title: "Glasshouse", Artist: "Marrow Lane"},
		TargetName:  "Living Room",
		PlayerState: remote.StatePlaying,
		Position:    45 * time.Second,
		Duration:    4 * time.Minute,
		Volume:      0.65,
	}
}

func TestFullyExpandedSurface(t *testing.T) {
	geom := expansion.Compute(100, 40, 1)
	out := testutil.Strip(Render(expandedState(), geom, 100))
	require.NotEmpty(t, out)

	assert.Contains(t, out, "Glasshouse")
	assert.Contains(t, out, "Marrow Lane")
	assert.Contains(t, out, "Living Room")
	assert.Contains(t, out, "0:45")
	assert.Contains(t, out, "4:00")
	assert.Contains(t, out, "65%")
	assert.Contains(t, out, "█", "artwork block is drawn")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, int(geom.SurfaceRows))
}

func TestControlsHiddenEarlyInMorph(t *testing.T) {
	geom := expansion.Compute(100, 40, 0.1)
	out := testutil.Strip(Render(expandedState(), geom, 100))
	assert.NotContains(t, out, "━", "seek bar resolves in later")
	assert.NotContains(t, out, "65%")
}

func TestNoTrackPlaceholder(t *testing.T) {
	s := expandedState()
	s.Track = nil
	geom := expansion.Compute(100, 40, 1)
	out := testutil.Strip(Render(s, geom, 100))
	assert.Contains(t, out, "nothing playing")
}

func TestOptimisticPositionClamped(t *testing.T) {
	s := expandedState()
	s.Position = 10 * time.Minute // ahead of duration
	geom := expansion.Compute(100, 40, 1)
	out := testutil.Strip(Render(s, geom, 100))
	assert.NotContains(t, out, "─", "bar is fully filled when position exceeds duration")
}

func TestTooSmallGeometryRendersNothing(t *testing.T) {
	geom := expansion.Compute(100, 40, 0)
	geom.SurfaceRows = 0
	assert.Empty(t, Render(expandedState(), geom, 100))
}
