package imagepipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBorder = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
	placeholderText   = color.NRGBA{R: 102, G: 102, B: 102, A: 255}
)

// Placeholder produces the fixed-size substitute image rendered when a
// source cannot be decoded: white background, gray border, centered
// label. It is encoded as PNG and always succeeds.
func Placeholder(text string, width, height int) *Encoded {
	if width <= 0 {
		width = 400
	}
	if height <= 0 {
		height = 300
	}

	img := imaging.New(width, height, color.White)

	border := image.NewUniform(placeholderBorder)
	draw.Draw(img, image.Rect(0, 0, width, 2), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, height-2, width, height), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, 2, height), border, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(width-2, 0, width, height), border, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderText),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	drawer.Dot = fixed.P((width-textWidth)/2, height/2+face.Height/2)
	drawer.DrawString(text)

	var buf bytes.Buffer
	// encoding an in-memory NRGBA to PNG cannot fail
	_ = imaging.Encode(&buf, img, imaging.PNG)

	return &Encoded{
		Data:   buf.Bytes(),
		Format: "png",
		Width:  width,
		Height: height,
	}
}
