// internal/render/draw.go
package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face - единственный шрифт интерфейса. basicfont не требует файлов на диске.
var Face font.Face = basicfont.Face7x13

var fillImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// DrawLines draws lines top to bottom and returns the y below the last one.
func DrawLines(dst *ebiten.Image, lines []string, x, y, lineH int, clr color.Color) int {
	for _, l := range lines {
		DrawText(dst, l, x, y, clr)
		y += lineH
	}
	return y
}

// DrawCentered centers s inside r.
func DrawCentered(dst *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	b := text.BoundString(Face, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-Face.Metrics().Height.Ceil())/2
	DrawText(dst, s, x, y, clr)
}

// TextWidth returns the pixel width of s.
func TextWidth(s string) int {
	return text.BoundString(Face, s).Dx()
}

// Wrap splits s into lines no wider than maxWidth pixels.
func Wrap(s string, maxWidth int) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if cur != "" && TextWidth(next) > maxWidth {
			lines = append(lines, cur)
			next = w
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// FillRect fills r.
func FillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// StrokeRect outlines r.
func StrokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// FillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2).
func FillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 0.5, SrcY: 0.5, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 0.5, SrcY: 0.5, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 0.5, SrcY: 0.5, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, fillImg, op)
}

// StrokeTriangle outlines the triangle.
func StrokeTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2, width float32, clr color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
	vector.StrokeLine(dst, x1, y1, x2, y2, width, clr, true)
	vector.StrokeLine(dst, x2, y2, x0, y0, width, clr, true)
}

// Darken halves the brightness of c.
func Darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
