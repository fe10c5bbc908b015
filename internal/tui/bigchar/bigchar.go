// Package bigchar renders label glyphs as large block art using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// SystemFontPaths are tried, in order, by NewSystemRenderer. CJK-capable fonts come first so that wide glyphs render.
var SystemFontPaths = []string{
	// macOS
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\arial.ttf",
}

const (
	faceSize  = 64
	padding   = 4
	threshold = uint8(40) // Brightness above which a half-cell is "on".
)

// Renderer rasterizes units with one font face and caches the results.
type Renderer struct {
	face font.Face

	mu    sync.Mutex
	cache map[string]string
}

// NewRenderer returns a renderer using the first of fontPaths that parses, or the bundled Go font if none does.
func NewRenderer(fontPaths ...string) *Renderer {
	r := &Renderer{cache: make(map[string]string)}

	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			r.face = face
			return r
		}
	}

	r.face = parseFace(goregular.TTF)
	return r
}

// NewSystemRenderer returns a renderer using the first available SystemFontPaths entry.
func NewSystemRenderer() *Renderer {
	return NewRenderer(SystemFontPaths...)
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: faceSize, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}

	// Try parsing as single font
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}

	return nil
}

// IsAvailable reports whether the renderer has a usable face.
func (r *Renderer) IsAvailable() bool {
	return r != nil && r.face != nil
}

// Blank returns a block of spaces with the same shape as a rendered unit.
func Blank(cols, rows int) string {
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// RenderBlock renders unit into rows lines of cols cells each. Empty or blank units render as Blank.
func (r *Renderer) RenderBlock(unit string, cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	if strings.TrimSpace(unit) == "" || !r.IsAvailable() {
		return Blank(cols, rows)
	}

	key := fmt.Sprintf("%s\x00%d\x00%d", unit, cols, rows)
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	rendered := r.render(unit, cols, rows)
	r.cache[key] = rendered
	return rendered
}

func (r *Renderer) render(unit string, cols, rows int) string {
	bounds, _ := font.BoundString(r.face, unit)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Source canvas matches the target aspect (one cell is one pixel wide and two tall).
	srcHeight := max(glyphHeight+padding*2, faceSize)
	srcWidth := max(glyphWidth+padding*2, srcHeight*cols/(rows*2))

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Center the ink box horizontally and sit it on the bottom padding.
	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(unit)

	scaled := scaleDown(srcImg, cols, rows*2)
	return imageToHalfBlocks(scaled, cols, rows)
}

// RenderLine renders each unit as a block cellCols*rows wide and joins the blocks side by side.
func (r *Renderer) RenderLine(units []string, cellCols, rows int) []string {
	lines := make([]string, rows)
	for _, u := range units {
		block := strings.Split(r.RenderBlock(u, cellCols, rows), "\n")
		for i := range lines {
			if i < len(block) {
				lines[i] += block[i]
			}
		}
	}
	return lines
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Each character cell represents 2 vertical pixels
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
