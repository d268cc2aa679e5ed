package types

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts are the faces shared by every screen. basicfont has a single size,
// so Small differs only in where screens choose to use it.
type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var (
	fontsOnce sync.Once
	fonts     *Fonts
)

func GetFonts() *Fonts {
	fontsOnce.Do(func() {
		fonts = &Fonts{
			Normal: basicfont.Face7x13,
			Small:  basicfont.Face7x13,
		}
	})
	return fonts
}
