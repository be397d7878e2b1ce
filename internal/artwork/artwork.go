// Package artwork fetches track artwork from the playback server and
// derives adaptive color schemes from it for player theming. Extraction
// is best-effort: any failure yields a nil scheme and the UI keeps its
// default palette.
package artwork

import (
	"fmt"
	"image"
	_ "image/gif" // register decoders for common artwork formats
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// sampleSize is the square thumbnail edge used for color sampling.
// Small enough that extraction stays well under a frame budget.
const sampleSize = 32

// Scheme is a background/foreground pair derived from artwork.
type Scheme struct {
	Background colorful.Color
	Foreground colorful.Color
}

// Schemes holds the light and dark variants extracted from one image.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// Extractor fetches artwork and extracts adaptive colors, caching
// results per URL.
type Extractor struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]*Schemes
}

// NewExtractor creates an extractor with its own HTTP client.
func NewExtractor() *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  make(map[string]*Schemes),
	}
}

// Extract downloads the image at url and derives adaptive schemes.
// Results are cached; repeated calls for the same URL are free.
func (e *Extractor) Extract(url string) (*Schemes, error) {
	if url == "" {
		return nil, fmt.Errorf("empty artwork url")
	}

	e.mu.Lock()
	if cached, ok := e.cache[url]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	resp, err := e.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode artwork: %w", err)
	}

	schemes := FromImage(img)

	e.mu.Lock()
	e.cache[url] = schemes
	e.mu.Unlock()

	return schemes, nil
}

// FromImage derives adaptive schemes from a decoded image.
func FromImage(img image.Image) *Schemes {
	thumb := resize.Thumbnail(sampleSize, sampleSize, img, resize.Bilinear)
	dominant := dominantColor(thumb)

	h, c, _ := dominant.Hcl()

	// Dark scheme: deep version of the dominant hue with bright text.
	darkBg := colorful.Hcl(h, clampChroma(c, 0.4), 0.22).Clamped()
	darkFg := colorful.Hcl(h, 0.05, 0.92).Clamped()

	// Light scheme: pale version with near-black text.
	lightBg := colorful.Hcl(h, clampChroma(c, 0.25), 0.88).Clamped()
	lightFg := colorful.Hcl(h, 0.08, 0.15).Clamped()

	return &Schemes{
		Light: Scheme{Background: lightBg, Foreground: lightFg},
		Dark:  Scheme{Background: darkBg, Foreground: darkFg},
	}
}

// dominantColor finds the most common quantized color, ignoring pixels
// that are nearly black or white since they are usually borders or text.
func dominantColor(img image.Image) colorful.Color {
	const buckets = 8 // per channel

	counts := make(map[[3]int]int)
	sums := make(map[[3]int][3]float64)

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue // fully transparent
			}
			_, _, l := c.Hcl()
			if l < 0.08 || l > 0.95 {
				continue
			}
			key := [3]int{
				int(c.R * (buckets - 1)),
				int(c.G * (buckets - 1)),
				int(c.B * (buckets - 1)),
			}
			counts[key]++
			s := sums[key]
			s[0] += c.R
			s[1] += c.G
			s[2] += c.B
			sums[key] = s
		}
	}

	best, bestCount := [3]int{}, 0
	for key, n := range counts {
		if n > bestCount {
			best, bestCount = key, n
		}
	}
	if bestCount == 0 {
		// Monochrome or empty image: fall back to mid gray.
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}

	s := sums[best]
	n := float64(bestCount)
	return colorful.Color{R: s[0] / n, G: s[1] / n, B: s[2] / n}
}

func clampChroma(c, max float64) float64 {
	if c > max {
		return max
	}
	return c
}
