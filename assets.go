package dimension

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// imageExts are tried in order when a reference names no extension.
var imageExts = []string{"", ".jpg", ".jpeg", ".png"}

// AssetLoader resolves image references to images in a file system.
// References may be plain file names or URLs; a URL resolves to the file
// named by the last element of its path. Remote images are never fetched.
type AssetLoader struct {
	fsys   fs.FS
	logger *zap.Logger
	cache  map[string]*ebiten.Image
}

// NewAssetLoader creates a loader reading from fsys. fsys may be nil, in
// which case every reference resolves to the placeholder.
func NewAssetLoader(fsys fs.FS, logger *zap.Logger) *AssetLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetLoader{fsys: fsys, logger: logger, cache: make(map[string]*ebiten.Image)}
}

// Image returns the image for ref, or a placeholder if it cannot be loaded.
// Results are cached per reference.
func (a *AssetLoader) Image(ref string) *ebiten.Image {
	if img, ok := a.cache[ref]; ok {
		return img
	}
	img, err := a.load(ref)
	if err != nil {
		a.logger.Warn("asset not found, using placeholder", zap.String("ref", ref), zap.Error(err))
		img = placeholderImage()
	}
	a.cache[ref] = img
	return img
}

// load decodes the first candidate file for ref.
func (a *AssetLoader) load(ref string) (*ebiten.Image, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("no asset directory")
	}
	name, err := AssetName(ref)
	if err != nil {
		return nil, err
	}
	var lastErr error
	for _, ext := range imageExts {
		f, err := a.fsys.Open(name + ext)
		if err != nil {
			lastErr = err
			continue
		}
		src, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name+ext, err)
		}
		return ebiten.NewImageFromImage(src), nil
	}
	return nil, lastErr
}

// AssetName returns the local file name a reference resolves to.
func AssetName(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty image reference")
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		ref = u.Path
	}
	name := path.Base(ref)
	if name == "." || name == "/" {
		return "", fmt.Errorf("image reference %q names no file", ref)
	}
	return name, nil
}

// placeholder singleton (no sync.Once, the scene is single-threaded)
var placeholder *ebiten.Image

// placeholderImage returns a muted slate gradient used in place of missing
// images.
func placeholderImage() *ebiten.Image {
	if placeholder == nil {
		placeholder = GradientImage(16, 12, HexColor("#1e293b"), HexColor("#334155"))
	}
	return placeholder
}
