package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resource directories inside the asset file system.
const (
	PicturesDir = "img/pictures"
	FacesDir    = "img/faces"
	SystemDir   = "img/system"
)

// ResourceManager is responsible for centralized management of image resources.
// It loads images from an fs.FS (the asset directory on disk or an embedded
// file system) and caches them, so a picture shown repeatedly is decoded once.
//
// Thread Safety Note:
// The cache is a plain map. The game loop is single-threaded, so no
// synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets"))
//	img, err := rm.LoadPicture("Door00")
//	if err != nil {
//	    logger.Sugar.Warnf("Failed to load picture: %v", err)
//	}
type ResourceManager struct {
	fsys       fs.FS
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates a ResourceManager reading from fsys.
// A nil fsys yields a manager whose loads always fail.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
//   - Failed loads are not cached, a later call retries.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}
	if rm.fsys == nil {
		return nil, fmt.Errorf("failed to open image file %s: no asset file system", p)
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// PutImage registers an already decoded image under the given path.
// Used by tools and tests that generate images in memory.
func (rm *ResourceManager) PutImage(p string, img *ebiten.Image) {
	rm.imageCache[p] = img
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[p]
}

// PicturePath returns the asset path of a picture name (no extension).
func PicturePath(name string) string {
	return path.Join(PicturesDir, name+".png")
}

// FacePath returns the asset path of a face sheet name (no extension).
func FacePath(name string) string {
	return path.Join(FacesDir, name+".png")
}

// LoadPicture loads img/pictures/<name>.png.
// It satisfies systems.ImageLoader.
func (rm *ResourceManager) LoadPicture(name string) (*ebiten.Image, error) {
	return rm.LoadImage(PicturePath(name))
}

// LoadFace loads img/faces/<name>.png.
func (rm *ResourceManager) LoadFace(name string) (*ebiten.Image, error) {
	return rm.LoadImage(FacePath(name))
}

// LoadSystem loads img/system/<name>.png (icon sets, window skins).
func (rm *ResourceManager) LoadSystem(name string) (*ebiten.Image, error) {
	return rm.LoadImage(path.Join(SystemDir, name+".png"))
}
