package main

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// GameFonts holds the faces used for captions and scores
type GameFonts struct {
	caption font.Face
	body    font.Face
	normal  font.Face
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// NewGameFonts parses the built in Go font and makes the faces
func NewGameFonts() *GameFonts {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	return &GameFonts{
		caption: newFace(tt, 144),
		body:    newFace(tt, 60),
		normal:  newFace(tt, 30),
	}
}
