package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type FileReader struct {
	file *os.File
	buf  *bufio.Reader
}

// A compile time check to ensure that FileReader fully implements io.Reader.
var _ io.Reader = (*FileReader)(nil)

func NewFileReader(name string, bufferSize uint) (*FileReader, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	return &FileReader{
		file: file,
		buf:  bufio.NewReaderSize(file, int(bufferSize)),
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

// Size returns the file length in bytes.
func (r *FileReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// NumBits returns the file length as a bit count.
func (r *FileReader) NumBits() (uint64, error) {
	size, err := r.Size()
	if err != nil {
		return 0, err
	}
	return uint64(size) * 8, nil
}

// LastByte reads the final byte of the file without disturbing the stream
// position. It is the pre-pass which fetches the right-rotation wrap bit
// before the main streaming pass begins.
func (r *FileReader) LastByte() (byte, error) {
	size, err := r.Size()
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, io.EOF
	}

	var p [1]byte
	if _, err := r.file.ReadAt(p[:], size-1); err != nil {
		return 0, err
	}
	return p[0], nil
}

func (r *FileReader) Close() error {
	r.buf = nil
	return r.file.Close()
}
