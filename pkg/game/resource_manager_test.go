package game

import (
	"testing"
)

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager()
	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.fontFaceCache == nil || rm.fontSourceCache == nil {
		t.Error("caches should be initialized")
	}
}

// TestLoadFontCaching verifies that a face is parsed once and reused.
func TestLoadFontCaching(t *testing.T) {
	rm := NewResourceManager()

	face1, err := rm.LoadFont(FontRegular, 20)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face1.Size != 20 {
		t.Errorf("Size = %v, want 20", face1.Size)
	}

	face2, err := rm.LoadFont(FontRegular, 20)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face1 != face2 {
		t.Error("expected cached face to be returned")
	}

	big, err := rm.LoadFont(FontRegular, 48)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if big == face1 {
		t.Error("different sizes should produce different faces")
	}
	if big.Source != face1.Source {
		t.Error("faces of the same font should share one source")
	}

	if rm.GetFont(FontRegular, 48) != big {
		t.Error("GetFont should return the cached face")
	}
	if rm.GetFont(FontBold, 48) != nil {
		t.Error("GetFont should return nil for faces not loaded yet")
	}
}

// TestLoadFontUnknown verifies that unknown font names are rejected.
func TestLoadFontUnknown(t *testing.T) {
	rm := NewResourceManager()
	if _, err := rm.LoadFont("comic-sans", 12); err == nil {
		t.Error("expected error for unknown font")
	}
}
