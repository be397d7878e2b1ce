package expansion

// Layout constants for the two endpoint layouts. The collapsed surface
// is a short bar at the bottom of the screen; the expanded surface
// covers the whole screen.
const (
	collapsedRows    = 3
	collapsedArtCols = 4

	// Visibility ramps for elements that only exist in one layout.
	// Elements never pop: they fade through these progress windows.
	controlsFadeStart = 0.30
	controlsFadeEnd   = 0.60
	miniFadeStart     = 0.00
	miniFadeEnd       = 0.25
)

// Geometry describes every morph-dependent visual property for one
// frame. All fields are continuous functions of progress; renderers
// round to cells at the last moment.
type Geometry struct {
	// Surface placement
	SurfaceRows float64 // height of the player surface in rows
	SurfaceTop  float64 // first row of the surface

	// Artwork block
	ArtCols float64
	ArtRows float64
	ArtLeft float64
	ArtTop  float64 // relative to SurfaceTop

	// Text block
	TitleLeft   float64 // relative to surface, columns
	TitleTop    float64 // relative to SurfaceTop
	TitleWeight float64 // 0 = muted mini text, 1 = full title emphasis

	// Element visibility (0..1 opacities, used as color-blend factors)
	MiniOpacity     float64 // compact one-line content
	ControlsOpacity float64 // transport controls, seek bar
	HeaderOpacity   float64 // expanded header (target name, close hint)

	// Color blend between chrome background and artwork scheme
	BackgroundBlend float64
}

// Compute derives the frame geometry from screen size and expansion
// progress. It depends on nothing else.
func Compute(width, height int, t float64) Geometry {
	t = clamp01(t)
	w := float64(width)
	h := float64(height)

	surfaceRows := lerp(collapsedRows, h, t)

	// Expanded artwork is a centered square block roughly a third of
	// the screen tall (double width for terminal cell aspect).
	expandedArtRows := h / 3
	expandedArtCols := expandedArtRows * 2
	if expandedArtCols > w-4 {
		expandedArtCols = w - 4
	}

	artCols := lerp(collapsedArtCols, expandedArtCols, t)
	artRows := lerp(1, expandedArtRows, t)
	artLeft := lerp(1, (w-expandedArtCols)/2, t)
	artTop := lerp(1, 2, t)

	titleLeft := lerp(collapsedArtCols+3, w/2, t)
	titleTop := lerp(1, artTop+expandedArtRows+1, t)

	return Geometry{
		SurfaceRows: surfaceRows,
		SurfaceTop:  h - surfaceRows,

		ArtCols: artCols,
		ArtRows: artRows,
		ArtLeft: artLeft,
		ArtTop:  artTop,

		TitleLeft:   titleLeft,
		TitleTop:    titleTop,
		TitleWeight: t,

		MiniOpacity:     1 - ramp(t, miniFadeStart, miniFadeEnd),
		ControlsOpacity: ramp(t, controlsFadeStart, controlsFadeEnd),
		HeaderOpacity:   ramp(t, controlsFadeStart, controlsFadeEnd),

		BackgroundBlend: t,
	}
}

func lerp(from, to, t float64) float64 { return from + (to-from)*t }

// ramp maps t to 0 below start, 1 above end, linear in between.
func ramp(t, start, end float64) float64 {
	if t <= start {
		return 0
	}
	if t >= end {
		return 1
	}
	return (t - start) / (end - start)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
