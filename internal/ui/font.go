//go:build ebiten

package ui

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	path string
	size float64
}

// Faces are shared between segments and across respawns of the element.
// The scene runs on the host's update goroutine only, so a plain map
// suffices.
var faceCache = map[faceKey]font.Face{}

// loadFace parses the TTF at path at the given size, reusing a cached
// face for repeated loads. A missing or unparsable file falls back to the
// embedded Go Regular face.
func loadFace(path string, size float64) font.Face {
	key := faceKey{path: path, size: size}
	if face, ok := faceCache[key]; ok {
		return face
	}
	face := newFace(path, size)
	faceCache[key] = face
	return face
}

func newFace(path string, size float64) font.Face {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("font %s: %v, using embedded face", path, err)
		} else if face, perr := parseFace(data, size); perr != nil {
			log.Printf("font %s: %v, using embedded face", path, perr)
		} else {
			return face
		}
	}
	face, err := parseFace(goregular.TTF, size)
	if err != nil {
		panic("screendiags: embedded fallback font failed to parse: " + err.Error())
	}
	return face
}

func parseFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
