package client

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRClient decodes QR codes from document page images. Training cards
// often carry the certificate ID in a QR code that survives scanning
// better than the printed text does.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodeImage returns the text payload of the first QR code found in the
// image, or an error when no code is readable.
func (qc *QRClient) DecodeImage(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}
