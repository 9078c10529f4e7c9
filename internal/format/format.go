// Package format defines the image container classification used across the
// module and its total, bidirectional mapping to codec identifier strings.
package format

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Format classifies an image container. It carries no behavior beyond
// round-trip mapping to the codec's native identifiers.
type Format int

const (
	Invalid Format = iota
	PNG
	JPEG
	GrayscaleJPEG
	BMP
	ICO
	EXR
	ICNS
)

var names = map[Format]string{
	PNG:           "png",
	JPEG:          "jpeg",
	GrayscaleJPEG: "jpeg-gray",
	BMP:           "bmp",
	ICO:           "ico",
	EXR:           "exr",
	ICNS:          "icns",
}

var byName = func() map[string]Format {
	m := make(map[string]Format, len(names))
	for f, n := range names {
		m[n] = f
	}
	return m
}()

// Name returns the codec identifier for f, or "" for Invalid and any
// unrecognized value.
func (f Format) Name() string {
	return names[f]
}

// String returns the codec identifier, or "invalid".
func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "invalid"
}

// FromName maps a codec identifier back to a Format. Unrecognized or empty
// identifiers map to Invalid.
func FromName(name string) Format {
	return byName[name]
}

// Registered returns all codec identifiers in sorted order.
func Registered() []string {
	ns := maps.Values(names)
	sort.Strings(ns)
	return ns
}
