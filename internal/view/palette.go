// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// DefaultColor is the neutral palette entry.
const DefaultColor = "#ffffff"

var palette = []string{
	DefaultColor,
	"#f28b82",
	"#fbbc04",
	"#fff475",
	"#ccff90",
	"#a7ffeb",
	"#cbf0f8",
	"#aecbfa",
	"#d7aefb",
	"#fdcfe8",
}

// Palette returns a copy of the fixed item color palette.
func Palette() []string {
	return slices.Clone(palette)
}

// RandomColor draws a palette entry uniformly at random.
func RandomColor() string {
	return palette[rand.IntN(len(palette))]
}

// IsPaletteColor reports whether c is a palette entry. Comparison ignores case.
func IsPaletteColor(c string) bool {
	c = strings.ToLower(c)
	return slices.Contains(palette, c)
}

// NextColor returns the palette entry following c, wrapping around.
// Unknown colors start over at DefaultColor.
func NextColor(c string) string {
	i := slices.Index(palette, strings.ToLower(c))
	if i < 0 {
		return DefaultColor
	}
	return palette[(i+1)%len(palette)]
}
