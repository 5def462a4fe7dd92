package bitstream

import (
	"io"
)

// BitReader reads bits from an io.Reader.
type BitReader struct {
	stream    io.Reader
	pending   [1]byte
	alignment uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	b := new(BitReader)
	b.stream = r
	b.alignment = 8
	return b
}

// ReadByte reads the next single byte from the stream, regardless of the alignment.
// If the byte is split, the MSB pattern is followed in bit-groups.
func (br *BitReader) ReadByte() (byte, error) {
	if br.alignment == 8 {
		n, err := br.stream.Read(br.pending[:])
		if n != 1 || (err != nil && err != io.EOF) {
			br.pending[0] = 0
			return br.pending[0], err
		}
		// Mask io.EOF for the last byte.
		if err == io.EOF {
			err = nil
		}
		return br.pending[0], err
	}

	// The byte stream is not aligned.
	// Use the current byte MS bits, combined with the next byte MS bits as LS bits.

	current := br.pending[0]
	n, err := br.stream.Read(br.pending[:])
	if n != 1 || (err != nil && err != io.EOF) {
		return 0, err
	}

	// Use the next pending byte MS bits to fill LS bits.
	current |= br.pending[0] >> (8 - br.alignment)

	// Remove the used MS bits from the next pending byte.
	br.pending[0] <<= br.alignment

	return current, err
}

// ReadBit reads the next single bit from the stream, MSB first.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.alignment == 8 {
		n, err := br.stream.Read(br.pending[:])
		if n != 1 || (err != nil && err != io.EOF) {
			return Zero, err
		}
		br.alignment = 0
	}
	br.alignment++

	// Read MS bit.
	msb := Bit(br.pending[0]&0x80 == 0x80)

	// Remove MS bit.
	br.pending[0] <<= 1

	return msb, nil
}
