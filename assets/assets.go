// Package assets loads the textures and levels the raycaster draws.
//
// Every texture has a procedural stand-in, so a missing or broken image file
// is reported and then replaced rather than stopping the game.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/logging"
)

//go:embed levels/*.yaml levels/*.txtar
var levels embed.FS

// LoadImage decodes a png, jpeg, gif, bmp or webp file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return img, nil
}

type TextureSpec struct {
	Sheet     string
	Overlay   string
	Sky       string
	SheetCols int
	SheetRows int
}

type Textures struct {
	Sheet     image.Image
	Overlay   image.Image
	Sky       image.Image
	SheetCols int
	SheetRows int
}

const (
	sheetCellSize = 64
	skyWidth      = 1024
	skyHeight     = 256
	overlayWidth  = 480
	overlayHeight = 270
)

// LoadTextures loads the three textures named in spec, substituting a
// generated texture for each one that cannot be loaded.
func LoadTextures(spec TextureSpec, logger logging.Logger) *Textures {
	tex := &Textures{
		SheetCols: spec.SheetCols,
		SheetRows: spec.SheetRows,
	}

	tex.Sheet = loadOr(spec.Sheet, logger, func() image.Image {
		return WallSheet(spec.SheetCols, spec.SheetRows, sheetCellSize)
	})
	tex.Sky = loadOr(spec.Sky, logger, func() image.Image {
		return SkyGradient(skyWidth, skyHeight)
	})
	tex.Overlay = loadOr(spec.Overlay, logger, func() image.Image {
		return Crosshair(overlayWidth, overlayHeight)
	})

	return tex
}

func loadOr(path string, logger logging.Logger, fallback func() image.Image) image.Image {
	if path == "" {
		return fallback()
	}
	img, err := LoadImage(path)
	if err != nil {
		logger.Warnf("Failed to load texture: %s (%v), using a generated one", path, err)
		return fallback()
	}
	logger.Debugf("loaded texture %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return img
}

// Level resolves a level reference:
//
//	""                  the embedded default level
//	"builtin:NAME"      a level shipped with the game
//	"pack.txtar"        the first level of a pack file
//	"pack.txtar:NAME"   a named level of a pack file
//	anything else       a YAML level file
func Level(ref string) (*grid.Level, error) {
	switch {
	case ref == "":
		return DefaultLevel()
	case strings.HasPrefix(ref, builtinPrefix):
		all, err := Builtin()
		if err != nil {
			return nil, err
		}
		return Pick(all, strings.TrimPrefix(ref, builtinPrefix))
	case strings.HasSuffix(ref, ".txtar") || strings.Contains(ref, ".txtar:"):
		path, name, found := strings.Cut(ref, ".txtar:")
		if found {
			path += ".txtar"
		}
		pack, err := LoadPack(path)
		if err != nil {
			return nil, err
		}
		return Pick(pack, name)
	}
	return grid.LoadLevel(ref)
}

func DefaultLevel() (*grid.Level, error) {
	data, err := levels.ReadFile("levels/default.yaml")
	if err != nil {
		return nil, err
	}
	return grid.ParseLevel(data)
}
