package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Sprite names the renderers look up.
const (
	SpriteHeadUp        = "Snake_Up"
	SpriteHeadDown      = "Snake_Down"
	SpriteHeadLeft      = "Snake_Left"
	SpriteHeadRight     = "Snake_Right"
	SpriteSegmentHoriz  = "Snake_Segment_Horizontal"
	SpriteSegmentVert   = "Snake_Segment_Vertical"
	SpriteLemon         = "Lemon"
	SpriteRottenLemon   = "Rotten_Lemon"
	SpriteApple         = "Apple"
	SpriteBanana        = "Banana"
	SpriteSpike         = "Spike"
	BackgroundMenu      = "MenuScreen"
	BackgroundOptions   = "Options_BG"
	BackgroundGame      = "Game_BG"
	maxParallelDecoders = 8
)

var RequiredSprites = []string{
	SpriteHeadUp, SpriteHeadDown, SpriteHeadLeft, SpriteHeadRight,
	SpriteSegmentHoriz, SpriteSegmentVert,
	SpriteLemon, SpriteRottenLemon, SpriteApple, SpriteBanana, SpriteSpike,
}

var RequiredBackgrounds = []string{BackgroundMenu, BackgroundOptions, BackgroundGame}

var imageExtensions = map[string]bool{
	".gif":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// LogicalName strips the directory and extension from an image path.
func LogicalName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DecodeDirectory decodes every image directly inside dir, keyed by logical
// name. A missing directory yields an empty map and a warning, not an error;
// an image that fails to decode is logged and left out.
func DecodeDirectory(dir string) (map[string]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: asset directory %s not found", dir)
			return map[string]image.Image{}, nil
		}
		return nil, fmt.Errorf("read asset dir %s: %w", dir, err)
	}

	var (
		mu     sync.Mutex
		images = make(map[string]image.Image, len(entries))
		g      errgroup.Group
	)
	g.SetLimit(maxParallelDecoders)

	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			img, err := decodeFile(path)
			if err != nil {
				log.Printf("Warning: skipping image: %v", err)
				return nil
			}
			mu.Lock()
			images[LogicalName(path)] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Missing lists required names absent from the set, sorted.
func Missing[T any](set map[string]T, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := set[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
