package favicon

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// GhostShift brand colors: dark stealth background, purple-gray silhouette,
// neon cyan-green eye.
var (
	bgColor        = color.NRGBA{R: 10, G: 10, B: 15, A: 255}
	ghostColor     = color.NRGBA{R: 40, G: 40, B: 60, A: 255}
	neonColor      = color.NRGBA{R: 0, G: 255, B: 170, A: 255}
	highlightColor = color.NRGBA{R: 200, G: 255, B: 230, A: 255}
)

// The icon is designed on a 64px grid; everything scales from there.
const refSize = 64.0

// Below this the shapes collapse into mush, so we only paint the background.
const minGhostSize = 8

const (
	glowLayers    = 3
	glowBaseAlpha = 60
	glowAlphaStep = 15
)

// scaleFor maps a target size onto the 64px reference design. Clamped so
// that shapes never shrink below half their minimum design proportions.
func scaleFor(size int) float64 {
	return math.Max(float64(size)/refSize, 0.5)
}

func glowAlpha(layer int) uint8 {
	return uint8(glowBaseAlpha - layer*glowAlphaStep)
}

// ghostGeometry holds the scaled measurements for one target size. The
// center sits slightly above the true middle so the scalloped skirt has
// room at the bottom.
type ghostGeometry struct {
	size   float64
	s      float64
	cx, cy float64
}

func newGhostGeometry(size int) ghostGeometry {
	s := scaleFor(size)
	half := math.Floor(float64(size) / 2)
	g := ghostGeometry{size: float64(size), s: s, cx: half}
	g.cy = half - g.px(4)
	return g
}

// px scales a reference-design measurement, floored and clamped to at
// least one pixel so no shape ever degenerates to zero size.
func (g ghostGeometry) px(units float64) float64 {
	return math.Max(1, math.Floor(units*g.s))
}

// The canvas origin is bottom-left with y growing upward; the design is
// specified top-down, so y coordinates get flipped on the way in.
func (g ghostGeometry) flip(y float64) float64 {
	return g.size - y
}

// bodyOutline is the ghost silhouette: straight-ish sides and a wavy
// four-scallop bottom edge, eleven vertices total.
func (g ghostGeometry) bodyOutline() *canvas.Path {
	points := [][2]float64{
		{g.cx - g.px(20), g.cy + g.px(10)},
		{g.cx - g.px(22), g.cy + g.px(20)},
		{g.cx - g.px(18), g.cy + g.px(26)},
		{g.cx - g.px(14), g.cy + g.px(28)},
		{g.cx - g.px(8), g.cy + g.px(24)},
		{g.cx, g.cy + g.px(28)},
		{g.cx + g.px(8), g.cy + g.px(24)},
		{g.cx + g.px(14), g.cy + g.px(28)},
		{g.cx + g.px(18), g.cy + g.px(26)},
		{g.cx + g.px(22), g.cy + g.px(20)},
		{g.cx + g.px(20), g.cy + g.px(10)},
	}
	p := &canvas.Path{}
	p.MoveTo(points[0][0], g.flip(points[0][1]))
	for _, pt := range points[1:] {
		p.LineTo(pt[0], g.flip(pt[1]))
	}
	p.Close()
	return p
}

// fillEllipse draws an ellipse centered on the design-space point (cx, cy).
// canvas.Ellipse is centered on the origin, so translating to (cx, cy) is
// all it takes.
func (g ghostGeometry) fillEllipse(ctx *canvas.Context, cx, cy, rx, ry float64, c color.Color) {
	ctx.SetFillColor(c)
	ctx.DrawPath(cx, g.flip(cy), canvas.Ellipse(rx, ry))
}

func (g ghostGeometry) draw(ctx *canvas.Context) {
	ctx.SetFillColor(ghostColor)
	ctx.DrawPath(0.0, 0.0, g.bodyOutline())

	// Head: a rounded oval overlapping the top of the body. Its bounding
	// box extends a full headH above center but only headH/2 below, which
	// is what gives the silhouette its squashed dome.
	headW := math.Max(2, g.px(24))
	headH := math.Max(2, g.px(22))
	top := g.cy - headH
	bottom := g.cy + math.Floor(headH/2)
	headRy := (bottom - top) / 2
	g.fillEllipse(ctx, g.cx, top+headRy, headW, headRy, ghostColor)

	// Eye socket: a cutout back to the background color.
	eyeOffsetX := g.px(8)
	eyeX := g.cx - eyeOffsetX
	eyeY := g.cy - g.px(2)
	eyeRadius := g.px(6)
	g.fillEllipse(ctx, eyeX, eyeY, eyeRadius, eyeRadius, bgColor)

	// Glow rings, back to front: each ring is 2px smaller and a step less
	// transparent than the last, fading out from the pupil.
	glowRadius := math.Max(2, g.px(9))
	for i := 0; i < glowLayers; i++ {
		r := math.Max(1, glowRadius-float64(i*2))
		glow := neonColor
		glow.A = glowAlpha(i)
		g.fillEllipse(ctx, eyeX, eyeY, r, r, glow)
	}

	pupilRadius := g.px(4)
	g.fillEllipse(ctx, eyeX, eyeY, pupilRadius, pupilRadius, neonColor)

	// Highlight: a small bright dot toward the upper-left of the pupil.
	// Derived from corner offsets rather than a radius, same as the
	// reference design; collapses to a 1px dot at the minimum scale.
	near := g.px(0.5)
	far := g.px(2)
	hr := math.Max(0.5, (far-near)/2)
	g.fillEllipse(ctx, eyeX-near-hr, eyeY-near-hr, hr, hr, highlightColor)
}

// GenerateGhost renders the ghost mask at the given pixel size. It's a pure
// function of size; sizes below minGhostSize come back as a plain
// background-colored canvas rather than an error.
func GenerateGhost(size int) *canvas.Canvas {
	c := canvas.New(float64(size), float64(size))
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(bgColor)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(float64(size), float64(size)))

	if size < minGhostSize {
		return c
	}
	newGhostGeometry(size).draw(ctx)
	return c
}

// GenerateGhostImage rasterizes the ghost mask to an RGBA image of exactly
// size×size pixels (the canvas is laid out at one unit per pixel).
func GenerateGhostImage(size int) *image.RGBA {
	return rasterizer.Draw(GenerateGhost(size), canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

func GenerateGhostPNG(w io.Writer, size int) error {
	c := GenerateGhost(size)
	pngWriter := renderers.PNG(canvas.DPMM(1.0))
	return pngWriter(w, c)
}
