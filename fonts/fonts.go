package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Title FontName = "title"
	HUD   FontName = "hud"
	Small FontName = "small"
)

var (
	fonts = map[FontName]font.Face{}
)

func init() {
	// Every face starts on the bitmap fallback so text can render
	// before the splash loader has parsed the real typeface.
	for _, name := range []FontName{Title, HUD, Small} {
		fonts[name] = basicfont.Face7x13
	}
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

// LoadFontWithSize parses a TTF and registers it under the given name,
// replacing the bitmap fallback. The registry keeps its previous face
// on error.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
