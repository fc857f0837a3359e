package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// createTestPNG creates a simple w x h PNG and returns its encoded bytes.
func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"img/pictures/Door00.png": &fstest.MapFile{Data: createTestPNG(t, 10, 40)},
		"img/faces/Actor1.png":    &fstest.MapFile{Data: createTestPNG(t, 8, 8)},
		"img/pictures/broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}
}

// TestResourceManager_LoadPicture tests loading and caching a picture.
func TestResourceManager_LoadPicture(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	img, err := rm.LoadPicture("Door00")
	if err != nil {
		t.Fatalf("LoadPicture failed: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 40 {
		t.Errorf("unexpected size %dx%d", w, h)
	}

	again, err := rm.LoadPicture("Door00")
	if err != nil || again != img {
		t.Error("second load should return the cached image")
	}
	if rm.GetImage(PicturePath("Door00")) != img {
		t.Error("GetImage should return the cached image")
	}
}

// TestResourceManager_LoadErrors tests missing, corrupted and nil file systems.
func TestResourceManager_LoadErrors(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	if _, err := rm.LoadPicture("Missing"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := rm.LoadPicture("broken"); err == nil {
		t.Error("expected error for corrupted file")
	}
	if rm.GetImage(PicturePath("broken")) != nil {
		t.Error("failed loads must not be cached")
	}

	empty := NewResourceManager(nil)
	if _, err := empty.LoadFace("Actor1"); err == nil {
		t.Error("expected error without file system")
	}
}

// TestResourceManager_Paths 测试资源路径拼接
func TestResourceManager_Paths(t *testing.T) {
	if got := PicturePath("Door00"); got != "img/pictures/Door00.png" {
		t.Errorf("PicturePath = %q", got)
	}
	if got := FacePath("Actor1"); got != "img/faces/Actor1.png" {
		t.Errorf("FacePath = %q", got)
	}

	rm := NewResourceManager(testAssets(t))
	if _, err := rm.LoadFace("Actor1"); err != nil {
		t.Errorf("LoadFace failed: %v", err)
	}
}
