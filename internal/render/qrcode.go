package render

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// QRCode draws a square QR code with its top-left corner at At.
type QRCode struct {
	Payload string
	At      image.Point
	Size    int
}

func (q QRCode) Draw(d Drawer) error {
	img, err := GenerateQRCodeImage(q.Payload, q.Size)
	if err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	if img == nil {
		return nil
	}
	size := q.Size
	if size <= 0 {
		size = defaultQRCodeSizePx
	}
	return Image{Src: img, Rect: image.Rect(q.At.X, q.At.Y, q.At.X+size, q.At.Y+size), Mode: ScaleModeStretch}.Draw(d)
}

// Image scales Src into Rect.
type Image struct {
	Src  image.Image
	Rect image.Rectangle
	Mode ScaleMode
}

func (i Image) Draw(d Drawer) error {
	if i.Src == nil {
		return nil
	}
	d.DrawImageInRect(i.Src, i.Rect, i.Mode)
	return nil
}
