package envelope

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the side length in pixels used when none is given.
const DefaultQRSize = 512

// QRCode renders a share token as a size x size PNG for nearby hand-off.
func QRCode(token string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(token, qrcode.Low, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
