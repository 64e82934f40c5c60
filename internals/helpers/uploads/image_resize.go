package uploads

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// fitWithin mengecilkan gambar raster supaya sisi terpanjang <= maxDim.
// Return nil, nil kalau format tidak didukung (svg, ico) atau sudah cukup kecil.
func fitWithin(data []byte, ext string, maxDim int) ([]byte, error) {
	isWebP := ext == ".webp"
	format, ferr := imaging.FormatFromExtension(ext)
	if ferr != nil && !isWebP {
		return nil, nil
	}

	var (
		img image.Image
		err error
	)
	if isWebP {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return nil, nil
	}
	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if isWebP {
		err = webp.Encode(&buf, resized, &webp.Options{Quality: 85})
	} else {
		err = imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85))
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
