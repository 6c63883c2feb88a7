package render

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontsOnce   sync.Once
	fontRegular *opentype.Font
	fontBold    *opentype.Font
	fontsErr    error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		fontRegular, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parse regular font")
			return
		}
		fontBold, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parse bold font")
		}
	})
	return fontsErr
}

// fontFace returns a face of size points rendered at dpi.
func fontFace(size float64, bold bool, dpi float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	f := fontRegular
	if bold {
		f = fontBold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create %vpt font face", size)
	}
	return face, nil
}
