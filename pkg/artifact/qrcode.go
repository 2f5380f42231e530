/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package artifact

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// QRGenerator renders black-on-white QR codes with a one-module quiet zone.
type QRGenerator struct {
	level qrcode.RecoveryLevel
}

func NewQRGenerator() *QRGenerator {
	return &QRGenerator{level: qrcode.Medium}
}

// Generate returns a size×size PNG encoding url.
func (g *QRGenerator) Generate(url string, size int) ([]byte, error) {
	q, err := qrcode.New(url, g.level)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	q.DisableBorder = true

	bitmap := q.Bitmap()
	modules := len(bitmap)
	span := modules + 2*quietZoneModules

	if size < span {
		return nil, fmt.Errorf("marker size %d is smaller than %d modules", size, span)
	}

	img := image.NewGray(image.Rect(0, 0, span, span))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				img.SetGray(x+quietZoneModules, y+quietZoneModules, color.Gray{})
			}
		}
	}

	scaled := imaging.Resize(img, size, size, imaging.NearestNeighbor)

	var buf bytes.Buffer

	if err = imaging.Encode(&buf, scaled, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode marker png: %w", err)
	}

	return buf.Bytes(), nil
}

const quietZoneModules = 1
