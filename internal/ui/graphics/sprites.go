package graphics

import (
	"fmt"
	"log"

	"catchthatlemon/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadSprites decodes the sprite and background directories into GPU images.
// Missing files only produce warnings; the renderers fall back to shapes.
func LoadSprites(spritesDir, backgroundsDir string) (map[string]*ebiten.Image, error) {
	sprites := make(map[string]*ebiten.Image)
	for _, set := range []struct {
		dir      string
		required []string
	}{
		{spritesDir, assets.RequiredSprites},
		{backgroundsDir, assets.RequiredBackgrounds},
	} {
		decoded, err := assets.DecodeDirectory(set.dir)
		if err != nil {
			return nil, fmt.Errorf("load images from %s: %w", set.dir, err)
		}
		if missing := assets.Missing(decoded, set.required); len(missing) > 0 {
			log.Printf("Warning: %s is missing %v, using fallback shapes", set.dir, missing)
		}
		for name, img := range decoded {
			sprites[name] = ebiten.NewImageFromImage(img)
		}
	}
	log.Printf("Loaded %d images", len(sprites))
	return sprites, nil
}
