package rotation

import (
	"io"

	"github.com/hexegic/rotate/bitstream"
)

// The streaming forms never buffer more than a single pending byte on each
// side of the stream. At the bit level a one-bit rotation is just a copy with
// the two stream ends exchanged: rotating left moves the first bit to the
// end, rotating right moves the last bit to the front. Both are expressed
// here as a misaligned byte-at-a-time copy through a bitstream reader/writer
// pair, with the wrap bit handled outside the copy loop.

// StreamLeft writes the one-bit-left rotation of the next numBytes bytes of r
// to w. The wrap bit is the stream's own first bit, so no pre-pass over the
// input is needed.
func StreamLeft(r io.Reader, w io.Writer, numBytes int64) error {
	if numBytes == 0 {
		return nil
	}

	br := bitstream.NewReader(r)
	bw := bitstream.NewWriter(w)

	// The stream's first bit wraps around to become its last.
	wrap, err := br.ReadBit()
	if err != nil {
		return err
	}

	for i := int64(0); i < numBytes-1; i++ {
		byt, err := br.ReadByte()
		if err != nil {
			return err
		}
		if err := bw.WriteByte(byt); err != nil {
			return err
		}
	}

	// 7 bits of the input remain; the wrap bit completes the last byte,
	// leaving the writer byte-aligned with nothing pending.
	for i := 0; i < 7; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return err
		}
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return bw.WriteBit(wrap)
}

// StreamRight writes the one-bit-right rotation of the next numBytes bytes of
// r to w. The wrap bit leads the output but lives at the very end of the
// input, so the caller must fetch it up front with a pre-pass over the final
// byte (see WrapRight) and pass it in.
func StreamRight(r io.Reader, w io.Writer, numBytes int64, wrap bitstream.Bit) error {
	if numBytes == 0 {
		return nil
	}

	br := bitstream.NewReader(r)
	bw := bitstream.NewWriter(w)

	if err := bw.WriteBit(wrap); err != nil {
		return err
	}

	for i := int64(0); i < numBytes-1; i++ {
		byt, err := br.ReadByte()
		if err != nil {
			return err
		}
		if err := bw.WriteByte(byt); err != nil {
			return err
		}
	}

	// Copy 7 of the final byte's bits; its last bit is the wrap bit,
	// already written, and stays unconsumed.
	for i := 0; i < 7; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return err
		}
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}

// WrapRight extracts the wrap bit for a right rotation from the stream's
// final byte.
func WrapRight(lastByte byte) bitstream.Bit {
	return bitstream.Bit(lastByte&0x01 == 0x01)
}
