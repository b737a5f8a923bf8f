package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in font names accepted by LoadFont.
const (
	FontRegular = "regular"
	FontBold    = "bold"
)

// builtinFonts maps font names to the TTF data of the Go font family.
var builtinFonts = map[string][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
}

// ResourceManager is responsible for centralized management of rendering resources.
// It provides loading and caching of font faces, ensuring that each font source
// is parsed only once and reused throughout the game.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(FontBold, 48)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fontSourceCache map[string]*text.GoTextFaceSource // Cache for parsed font sources: name -> source
	fontFaceCache   map[string]*text.GoTextFace       // Cache for Ebitengine v2 text faces: name:size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// LoadFont loads a built-in font face of the given size and caches it for future use.
// If the face has already been loaded, it returns the cached version.
//
// Parameters:
//   - name: The font name (FontRegular or FontBold).
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the font is unknown or cannot be parsed.
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(name)
	if err != nil {
		return nil, err
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	return rm.fontFaceCache[cacheKey]
}

// loadFontSource parses (or returns the cached) font source for a built-in font.
func (rm *ResourceManager) loadFontSource(name string) (*text.GoTextFaceSource, error) {
	if source, exists := rm.fontSourceCache[name]; exists {
		return source, nil
	}

	fontData, ok := builtinFonts[name]
	if !ok {
		return nil, fmt.Errorf("unknown font: %s", name)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	rm.fontSourceCache[name] = source
	return source, nil
}
