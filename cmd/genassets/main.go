// Package main generates the placeholder images used by the demo script.
//
// Usage:
//
//	go run ./cmd/genassets [--out assets]
//
// Output (relative to --out):
//
//	img/pictures/Door.png      4 cells stacked vertically
//	img/pictures/Flag.png      6 cells side by side
//	img/pictures/Lamp00.png .. Lamp03.png  one file per cell
//	img/faces/Actor1.png       4x2 face sheet
//	img/system/IconSet.png     16x2 icon set
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/systems"
)

var outFlag = flag.String("out", "assets", "Asset root directory")

// palette 单元格颜色，依次使用
var palette = []color.RGBA{
	{R: 220, G: 80, B: 60, A: 255},
	{R: 240, G: 180, B: 50, A: 255},
	{R: 90, G: 190, B: 90, A: 255},
	{R: 60, G: 140, B: 220, A: 255},
	{R: 150, G: 90, B: 200, A: 255},
	{R: 230, G: 120, B: 180, A: 255},
}

func main() {
	flag.Parse()

	steps := []struct {
		name string
		img  image.Image
	}{
		{"img/pictures/Door.png", strip(96, 96, 4, true)},
		{"img/pictures/Flag.png", strip(64, 64, 6, false)},
		{"img/faces/Actor1.png", grid(config.FaceWidth, config.FaceHeight, config.FaceColumns, 2)},
		{"img/system/IconSet.png", grid(config.IconSize, config.IconSize, config.IconSetColumns, 2)},
	}
	for i := 0; i < 4; i++ {
		steps = append(steps, struct {
			name string
			img  image.Image
		}{"img/pictures/" + systems.SequentialCellName("Lamp00", i) + ".png", cell(64, 64, i)})
	}

	for _, s := range steps {
		if err := writePNG(filepath.Join(*outFlag, s.name), s.img); err != nil {
			fmt.Fprintf(os.Stderr, "genassets: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", s.name)
	}
}

// cell 单个单元格：底色 + 随序号变长的横条
func cell(w, h, index int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := palette[index%len(palette)]
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)

	bar := image.Rect(4, h/2-4, 4+(w-8)*(index%len(palette)+1)/len(palette), h/2+4)
	draw.Draw(img, bar, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}

// strip 把 n 个单元格排成一列（vertical）或一行
func strip(w, h, n int, vertical bool) *image.RGBA {
	bounds := image.Rect(0, 0, w*n, h)
	if vertical {
		bounds = image.Rect(0, 0, w, h*n)
	}
	img := image.NewRGBA(bounds)
	for i := 0; i < n; i++ {
		at := image.Pt(i*w, 0)
		if vertical {
			at = image.Pt(0, i*h)
		}
		draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}, cell(w, h, i), image.Point{}, draw.Src)
	}
	return img
}

// grid cols x rows 的单元格表（头像、图标集）
func grid(w, h, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*cols, h*rows))
	for i := 0; i < cols*rows; i++ {
		at := image.Pt(i%cols*w, i/cols*h)
		draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}, cell(w, h, i), image.Point{}, draw.Src)
	}
	return img
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
