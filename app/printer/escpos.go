package printer

import (
	"bytes"
	"fmt"
)

// ESC/POS control bytes
const (
	ESC byte = 0x1B
	GS  byte = 0x1D
	SO  byte = 0x0E
	DC4 byte = 0x14
	NL  byte = 0x0A
)

// Encode translates an operation sequence into the raw ESC/POS byte
// stream for the printer. It is pure: no I/O, no printer state of its
// own (alignment and attributes live in the printer; the layout engine
// emits matched on/off pairs and a trailing reset).
//
// Malformed operations are layout-engine bugs, not runtime conditions,
// and panic rather than being clamped.
func Encode(ops []Operation) []byte {
	buf := new(bytes.Buffer)
	for _, op := range ops {
		switch v := op.(type) {
		case Initialize:
			buf.Write([]byte{ESC, '@'})
		case Text:
			buf.WriteString(transliterate(v.Content))
		case Feed:
			if v.Lines < 0 {
				panic(fmt.Sprintf("printer: negative feed count %d", v.Lines))
			}
			for i := 0; i < v.Lines; i++ {
				buf.WriteByte(NL)
			}
		case SetAlign:
			if v.Align > AlignRight {
				panic(fmt.Sprintf("printer: invalid alignment %d", v.Align))
			}
			buf.Write([]byte{ESC, 'a', byte(v.Align)})
		case SetAttribute:
			buf.Write(attributeSequence(v.Attr, v.On))
		case SetTextSize:
			if v.Width < 1 || v.Width > 8 || v.Height < 1 || v.Height > 8 {
				panic(fmt.Sprintf("printer: text size %dx%d out of range", v.Width, v.Height))
			}
			size := byte((v.Width-1)<<4 | (v.Height - 1))
			buf.Write([]byte{GS, '!', size})
		case Raster:
			encodeRaster(buf, v)
		case CutPaper:
			// GS V 66 0: feed to the cut position, then partial cut.
			// Cutting without the feed slices through the last lines on
			// printers with loose feed calibration.
			buf.Write([]byte{GS, 'V', 66, 0})
		default:
			panic(fmt.Sprintf("printer: unknown operation %T", op))
		}
	}
	return buf.Bytes()
}

func attributeSequence(attr Attribute, on bool) []byte {
	var n byte
	if on {
		n = 1
	}
	switch attr {
	case AttrBold:
		return []byte{ESC, 'E', n}
	case AttrUnderline:
		return []byte{ESC, '-', n}
	case AttrDoubleWidth:
		if on {
			return []byte{ESC, SO}
		}
		return []byte{ESC, DC4}
	case AttrDoubleHeight:
		if on {
			return []byte{GS, '!', 0x01}
		}
		return []byte{GS, '!', 0x00}
	default:
		panic(fmt.Sprintf("printer: unknown attribute %d", attr))
	}
}

// encodeRaster emits GS v 0: raster bitmap in normal mode, width in
// bytes and height in dots, little endian.
func encodeRaster(buf *bytes.Buffer, r Raster) {
	if r.WidthBytes < 1 || r.Height < 1 || len(r.Bits) != r.WidthBytes*r.Height {
		panic(fmt.Sprintf("printer: raster %dx%d does not match %d data bytes",
			r.WidthBytes, r.Height, len(r.Bits)))
	}
	buf.Write([]byte{GS, 'v', '0', 0,
		byte(r.WidthBytes % 256), byte(r.WidthBytes / 256),
		byte(r.Height % 256), byte(r.Height / 256)})
	buf.Write(r.Bits)
}

// RasterFromBitmap converts a square module bitmap (true = black) into
// a raster operation, scaling each module to scale x scale dots.
func RasterFromBitmap(modules [][]bool, scale int) Raster {
	if scale < 1 {
		scale = 1
	}
	size := len(modules)
	widthDots := size * scale
	widthBytes := (widthDots + 7) / 8
	height := size * scale
	bits := make([]byte, widthBytes*height)
	for my, row := range modules {
		for mx, black := range row {
			if !black {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				y := my*scale + dy
				for dx := 0; dx < scale; dx++ {
					x := mx*scale + dx
					bits[y*widthBytes+x/8] |= 1 << uint(7-x%8)
				}
			}
		}
	}
	return Raster{WidthBytes: widthBytes, Height: height, Bits: bits}
}

// transliterate folds accented characters to their base ASCII form.
// The deployed printers run the default code page; anything outside it
// prints as garbage, so unknown characters become spaces.
func transliterate(text string) string {
	replacements := map[rune]rune{
		'á': 'a', 'Á': 'A',
		'é': 'e', 'É': 'E',
		'í': 'i', 'Í': 'I',
		'ó': 'o', 'Ó': 'O',
		'ú': 'u', 'Ú': 'U',
		'ü': 'u', 'Ü': 'U',
		'ñ': 'n', 'Ñ': 'N',
	}

	var result []rune
	for _, r := range text {
		switch {
		case r < 128:
			result = append(result, r)
		default:
			if repl, ok := replacements[r]; ok {
				result = append(result, repl)
			} else {
				result = append(result, ' ')
			}
		}
	}
	return string(result)
}
