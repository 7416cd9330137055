// Package render turns a sequence of board snapshots into an animated GIF,
// the recap format pushed to Discord and Tidbyt at game end.
package render

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/brensch/spaceheater/engine"
)

const (
	canvasWidth  = 64
	canvasHeight = 32
	cellSize     = 3
)

// FrameSnake is one snake's rendered state on a single frame.
type FrameSnake struct {
	Name  string
	Body  []engine.Point
	Color string // hex "#RRGGBB"; empty means derive one from Name
}

// Frame is one board snapshot to render.
type Frame struct {
	Width, Height int8
	Snakes        []FrameSnake
	Food          []engine.Point
}

// FrameFromState builds a Frame out of a live engine.GameState, the shape
// a server's /move or /end handler has in hand.
func FrameFromState(state *engine.GameState) Frame {
	f := Frame{Width: state.Board.Width(), Height: state.Board.Height()}
	for _, s := range state.AllSnakes() {
		if s.Dead() {
			continue
		}
		f.Snakes = append(f.Snakes, FrameSnake{Name: s.Name, Body: s.Body})
	}
	w, h := int(f.Width), int(f.Height)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p := engine.Point{X: int8(x), Y: int8(y)}
			if state.Board.Get(p).HasFood() {
				f.Food = append(f.Food, p)
			}
		}
	}
	return f
}

func generateColor(name string) color.RGBA {
	h := sha1.New()
	h.Write([]byte(name))
	sum := h.Sum(nil)
	return color.RGBA{sum[0], sum[1], sum[2], 255}
}

func lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(int(c.R)+30, 255)),
		G: uint8(min(int(c.G)+30, 255)),
		B: uint8(min(int(c.B)+30, 255)),
		A: c.A,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func hexToRGBA(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color format: %s", hex)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

func drawCell(img *image.RGBA, x, y int, c color.RGBA) {
	for i := 0; i < cellSize; i++ {
		for j := 0; j < cellSize; j++ {
			if y+j < canvasHeight {
				img.Set(x+i, y+j, c)
			}
		}
	}
}

func addScaledLabel(img *image.RGBA, x, y int, label string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

func renderFrameToImage(f Frame) (*image.RGBA, []color.Color) {
	palette := []color.Color{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
		color.RGBA{100, 100, 100, 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 255}}, image.Point{}, draw.Src)

	offsetX := canvasWidth - int(f.Width)*cellSize
	dividerColor := color.RGBA{100, 100, 100, 255}
	dividerRect := image.Rect(canvasWidth-cellSize*int(f.Width)-1, 0, canvasWidth-cellSize*int(f.Width), canvasHeight)
	draw.Draw(img, dividerRect, &image.Uniform{dividerColor}, image.Point{}, draw.Src)

	yOffset := 10
	for _, snake := range f.Snakes {
		bodyColor, err := hexToRGBA(snake.Color)
		if err != nil {
			bodyColor = generateColor(snake.Name)
		}
		headColor := lighten(bodyColor)
		palette = append(palette, bodyColor, headColor)

		for i, segment := range snake.Body {
			flippedY := int(f.Height) - 1 - int(segment.Y)
			c := bodyColor
			if i == 0 {
				c = headColor
			}
			drawCell(img, offsetX+int(segment.X)*cellSize, flippedY*cellSize, c)
		}

		addScaledLabel(img, 10, yOffset, fmt.Sprintf("%3d", len(snake.Body)), bodyColor)
		yOffset += 20
	}

	green := color.RGBA{0, 255, 0, 255}
	for _, food := range f.Food {
		flippedY := int(f.Height) - 1 - int(food.Y)
		drawCell(img, offsetX+int(food.X)*cellSize, flippedY*cellSize, green)
	}

	return img, palette
}

// GIF encodes frames as an animated GIF, pacing playback to fit within
// totalDurationMillis and appending a solid-color result screen at the end
// (green if won, red otherwise) held for one second.
func GIF(frames []Frame, totalDurationMillis int, won bool) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("render: no frames to encode")
	}

	const maxDelayPerFrame = 20
	delayPerFrame := totalDurationMillis / len(frames) / 10
	if delayPerFrame > maxDelayPerFrame {
		delayPerFrame = maxDelayPerFrame
	}
	if delayPerFrame < 1 {
		delayPerFrame = 1
	}

	var images []*image.Paletted
	var delays []int
	for i, f := range frames {
		img, palette := renderFrameToImage(f)
		paletted := image.NewPaletted(img.Bounds(), palette)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})
		images = append(images, paletted)
		if i == len(frames)-1 {
			delays = append(delays, 200)
		} else {
			delays = append(delays, delayPerFrame)
		}
	}

	resultColor := color.RGBA{255, 0, 0, 255}
	if won {
		resultColor = color.RGBA{0, 255, 0, 255}
	}
	finalScreen := image.NewPaletted(image.Rect(0, 0, canvasWidth, canvasHeight), color.Palette{resultColor})
	images = append(images, finalScreen)
	delays = append(delays, 100)

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &gif.GIF{Image: images, Delay: delays}); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}
