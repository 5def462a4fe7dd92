package bitstream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexegic/rotate/bitstream"
)

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

var (
	NewWriter = bitstream.NewWriter
	NewReader = bitstream.NewReader
)

func TestMSBOrder(t *testing.T) {
	req := require.New(t)

	br := NewReader(bytes.NewReader([]byte{0b10110010}))
	expected := []bitstream.Bit{One, Zero, One, One, Zero, Zero, One, Zero}
	for _, want := range expected {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.Equal(want, bit)
	}

	_, err := br.ReadBit()
	req.Equal(io.EOF, err)
}

func TestUnalignedReadByte(t *testing.T) {
	req := require.New(t)

	// 0xB2 0x4D = 10110010 01001101.
	br := NewReader(bytes.NewReader([]byte{0xB2, 0x4D}))

	bit, err := br.ReadBit()
	req.NoError(err)
	req.Equal(One, bit)

	// Bits 1..8 of the stream: 0110010 0 = 0x64.
	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte(0x64), b)

	// The remaining 7 bits of 0x4D.
	expected := []bitstream.Bit{One, Zero, Zero, One, One, Zero, One}
	for _, want := range expected {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.Equal(want, bit)
	}
}

func TestUnalignedWriteByte(t *testing.T) {
	req := require.New(t)

	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	err := bw.WriteBit(One)
	req.NoError(err)
	err = bw.WriteByte(0xAA)
	req.NoError(err)
	err = bw.Flush(Zero)
	req.NoError(err)

	// 1 + 10101010 + 0000000 = 11010101 00000000.
	data := buf.Bytes()
	req.Len(data, 2)
	req.Equal(byte(0xD5), data[0])
	req.Equal(byte(0x00), data[1])
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := "a string"
	br := NewReader(strings.NewReader(s))
	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			req.Fail(err.Error())
		}
		err = bw.WriteBit(bit)
		req.NoError(err)
	}

	req.Equal(s, buf.String())
}

func TestAlignment(t *testing.T) {
	req := require.New(t)

	s := "a string!" // 9 bytes, 72 bits.
	br := NewReader(strings.NewReader(s))
	buf := bytes.NewBuffer(nil)
	bw := NewWriter(buf)

	// Offset both streams by a single bit, then copy byte-at-a-time across
	// the misaligned boundary.
	bit, err := br.ReadBit()
	req.NoError(err)
	err = bw.WriteBit(bit)
	req.NoError(err)

	for i := 0; i < len(s)-1; i++ {
		b, err := br.ReadByte()
		req.NoError(err)
		err = bw.WriteByte(b)
		req.NoError(err)
	}

	for i := 0; i < 7; i++ {
		bit, err := br.ReadBit()
		req.NoError(err)
		err = bw.WriteBit(bit)
		req.NoError(err)
	}

	req.Equal(s, buf.String())
}

func TestEOF_0(t *testing.T) {
	req := require.New(t)

	_, err := NewReader(bytes.NewReader(nil)).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader(nil)).ReadByte()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader([]byte{})).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bytes.NewReader([]byte{})).ReadByte()
	req.Equal(io.EOF, err)
}

func TestEOF_1(t *testing.T) {
	req := require.New(t)

	br := NewReader(strings.NewReader("abc"))

	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte('a'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('b'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('c'), b)

	b, err = br.ReadByte()
	req.Equal(io.EOF, err)
	req.Equal(byte(0), b)
}

func TestBadWriter_0(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	for i := 0; i < 7; i++ {
		err := bw.WriteBit(One)
		req.NoError(err)
	}
	err := bw.WriteBit(One)
	req.Equal(err, ErrBadWriter)
}

func TestBadWriter_1(t *testing.T) {
	req := require.New(t)

	bw := NewWriter(&badWriter{})
	err := bw.WriteByte(0xFF)
	req.Equal(err, ErrBadWriter)
}

type badWriter struct{}

var ErrBadWriter = errors.New("bad writer")

func (w *badWriter) Write(p []byte) (n int, err error) {
	return 0, ErrBadWriter
}
