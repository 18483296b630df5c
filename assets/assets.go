package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/doorkey/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels returns the embedded level directory. Asset paths inside level
// descriptions are relative to it.
func Levels() fs.FS {
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded levels: %v", err))
	}
	return sub
}

var (
	ErrMissingAsset = errors.New("asset file not found")
	ErrNotAnImage   = errors.New("asset is not an image")
)

// Image is a decoded image asset. The GPU copy is created on first draw.
type Image struct {
	ID     string
	Path   string
	Source image.Image
	Width  int
	Height int

	ebiten *ebiten.Image
}

// Ebiten returns the drawable image, uploading it on first use.
func (i *Image) Ebiten() *ebiten.Image {
	if i.ebiten == nil {
		i.ebiten = ebiten.NewImageFromImage(i.Source)
	}
	return i.ebiten
}

// Registry resolves asset ids declared by a level to loaded files.
type Registry struct {
	fsys     fs.FS
	declared map[string]leveldata.Asset
	images   map[string]*Image
	cache    map[string]*Image // keyed by path, survives level changes
}

func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:     fsys,
		declared: make(map[string]leveldata.Asset),
		images:   make(map[string]*Image),
		cache:    make(map[string]*Image),
	}
}

// Reset forgets the ids registered by the previous level. Decoded files stay
// cached by path.
func (r *Registry) Reset() {
	r.declared = make(map[string]leveldata.Asset)
	r.images = make(map[string]*Image)
}

// Register checks that the asset's file exists and loads it under its id.
// Image assets are decoded; other types only need to exist.
func (r *Registry) Register(a leveldata.Asset) error {
	if a.ID == "" {
		return fmt.Errorf("asset %q: empty id", a.Path)
	}

	if _, err := fs.Stat(r.fsys, a.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("asset %q: %w: %s", a.ID, ErrMissingAsset, a.Path)
		}
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}

	r.declared[a.ID] = a
	if a.Type != "" && a.Type != "image" {
		return nil
	}

	if img, ok := r.cache[a.Path]; ok {
		r.images[a.ID] = img
		return nil
	}

	f, err := r.fsys.Open(a.Path)
	if err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("asset %q: decode %s: %w", a.ID, a.Path, err)
	}

	img := &Image{
		ID:     a.ID,
		Path:   a.Path,
		Source: src,
		Width:  src.Bounds().Dx(),
		Height: src.Bounds().Dy(),
	}
	r.cache[a.Path] = img
	r.images[a.ID] = img
	return nil
}

// RegisterAll registers every asset of a level, stopping at the first failure.
func (r *Registry) RegisterAll(list []leveldata.Asset) error {
	for _, a := range list {
		if err := r.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether an asset id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.declared[id]
	return ok
}

// Image returns a registered image asset.
func (r *Registry) Image(id string) (*Image, bool) {
	img, ok := r.images[id]
	return img, ok
}
