package texture

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// DecodeTGA decodes a TGA image file.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10) TGA files.
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := tgaDecoder{
		img:           image.NewNRGBA(image.Rect(0, 0, width, height)),
		data:          data[offset:],
		width:         width,
		height:        height,
		bytesPerPixel: bpp / 8,
		topToBottom:   descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		if len(d.data) < width*height*d.bytesPerPixel {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := range width * height {
			d.set(i, d.next())
		}
	} else {
		d.decodeRLE()
	}

	return d.img, nil
}

type tgaDecoder struct {
	img           *image.NRGBA
	data          []byte
	pos           int
	width, height int
	bytesPerPixel int
	topToBottom   bool
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() color.NRGBA {
	p := d.data[d.pos : d.pos+d.bytesPerPixel]
	d.pos += d.bytesPerPixel
	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c
}

// set writes pixel number i in file order.
func (d *tgaDecoder) set(i int, c color.NRGBA) {
	x := i % d.width
	y := i / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetNRGBA(x, y, c)
}

func (d *tgaDecoder) available() bool {
	return d.pos+d.bytesPerPixel <= len(d.data)
}

// decodeRLE decodes RLE packets until the image is full or data runs out.
func (d *tgaDecoder) decodeRLE() {
	pixelCount := d.width * d.height
	pixelIdx := 0

	for pixelIdx < pixelCount && d.pos < len(d.data) {
		packet := d.data[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet - repeat single pixel
			if !d.available() {
				break
			}
			c := d.next()
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				d.set(pixelIdx, c)
				pixelIdx++
			}
		} else {
			// Raw packet - read count pixels
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if !d.available() {
					break
				}
				d.set(pixelIdx, d.next())
				pixelIdx++
			}
		}
	}
}

// EncodeTGA writes img as an uncompressed 32-bit top-to-bottom TGA.
func EncodeTGA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > 0xFFFF || b.Dy() > 0xFFFF {
		return fmt.Errorf("image %dx%d too large for TGA", b.Dx(), b.Dy())
	}

	header := make([]byte, tgaHeaderSize)
	header[2] = TGATypeUncompressed
	header[12], header[13] = byte(b.Dx()), byte(b.Dx()>>8)
	header[14], header[15] = byte(b.Dy()), byte(b.Dy()>>8)
	header[16] = 32
	header[17] = 0x20 | 8 // top-to-bottom, 8 alpha bits

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("writing TGA header: %w", err)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if _, err := bw.Write([]byte{c.B, c.G, c.R, c.A}); err != nil {
				return fmt.Errorf("writing TGA pixels: %w", err)
			}
		}
	}
	return bw.Flush()
}
