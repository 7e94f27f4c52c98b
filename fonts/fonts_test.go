package fonts

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFallbackFaceAvailableBeforeLoading(t *testing.T) {
	if Small.Get() == nil {
		t.Fatalf("no face registered before loading")
	}
}

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(HUD, goregular.TTF, 16); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if HUD.Get() == basicfont.Face7x13 {
		t.Errorf("face still the bitmap fallback after a successful load")
	}
}

func TestLoadFontWithSizeKeepsPreviousFaceOnError(t *testing.T) {
	before := Title.Get()

	if err := LoadFontWithSize(Title, []byte("not a ttf"), 16); err == nil {
		t.Fatalf("no error for garbage font data")
	}
	if Title.Get() != before {
		t.Errorf("failed load replaced the registered face")
	}
}
