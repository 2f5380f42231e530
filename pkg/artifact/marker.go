/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination marker_mocks_test.go -self_package mocks -package artifact_test -source=marker.go -mock_names MarkerGenerator=MockMarkerGenerator

package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

const (
	// DefaultMarkerSize is the edge length of the square marker in pixels.
	DefaultMarkerSize = 100
	// DefaultMarkerMargin is the distance of the marker from the bottom and right edges.
	DefaultMarkerMargin = 20
)

// ErrArtifactProcessing wraps every failure to produce a marked artifact.
var ErrArtifactProcessing = errors.New("artifact processing")

// MarkerGenerator produces a scannable code image for a URL.
type MarkerGenerator interface {
	Generate(url string, size int) ([]byte, error)
}

type MarkerConfig struct {
	Generator MarkerGenerator
	Size      int
	Margin    int
}

// Marker embeds verification markers into credential images.
type Marker struct {
	generator MarkerGenerator
	size      int
	margin    int
}

func NewMarker(config *MarkerConfig) *Marker {
	m := &Marker{
		generator: config.Generator,
		size:      config.Size,
		margin:    config.Margin,
	}

	if m.generator == nil {
		m.generator = NewQRGenerator()
	}

	if m.size <= 0 {
		m.size = DefaultMarkerSize
	}

	if m.margin <= 0 {
		m.margin = DefaultMarkerMargin
	}

	return m
}

// Mark composites a marker for markerURL onto the bottom-right corner of the image and re-encodes it as PNG.
// The returned bytes are the canonical artifact.
func (m *Marker) Mark(imageBytes []byte, markerURL string) ([]byte, error) {
	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrArtifactProcessing)
	}

	base, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %w", ErrArtifactProcessing, err)
	}

	offset, err := m.Placement(base.Bounds())
	if err != nil {
		return nil, err
	}

	markerPNG, err := m.generator.Generate(markerURL, m.size)
	if err != nil {
		return nil, fmt.Errorf("%w: generate marker: %w", ErrArtifactProcessing, err)
	}

	marker, err := imaging.Decode(bytes.NewReader(markerPNG))
	if err != nil {
		return nil, fmt.Errorf("%w: decode marker: %w", ErrArtifactProcessing, err)
	}

	marked := imaging.Overlay(base, marker, offset, 1.0)

	var buf bytes.Buffer

	err = imaging.Encode(&buf, marked, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	if err != nil {
		return nil, fmt.Errorf("%w: encode artifact: %w", ErrArtifactProcessing, err)
	}

	return buf.Bytes(), nil
}

// Placement returns the top-left corner of the marker for an image with the given bounds.
func (m *Marker) Placement(bounds image.Rectangle) (image.Point, error) {
	w, h := bounds.Dx(), bounds.Dy()

	if w < m.size+m.margin || h < m.size+m.margin {
		return image.Point{}, fmt.Errorf("%w: image %dx%d is too small for a %dpx marker",
			ErrArtifactProcessing, w, h, m.size)
	}

	return image.Pt(w-m.size-m.margin, h-m.size-m.margin), nil
}

// URL returns the verification URL a marker for slug points to.
func URL(baseURL, slug string) string {
	return fmt.Sprintf("%s/validate?q=%s", baseURL, slug)
}
