package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type FileWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// A compile time check to ensure that FileWriter fully implements io.Writer.
var _ io.Writer = (*FileWriter)(nil)

func NewFileWriter(name string, bufferSize uint) (*FileWriter, error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return &FileWriter{
		file: f,
		buf:  bufio.NewWriterSize(f, int(bufferSize)),
	}, nil
}

func (w *FileWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %w", err)
	}

	return nil
}

// Close flushes any pending bytes and closes the file, returning its final
// stat for the size post-check.
func (w *FileWriter) Close() (*os.FileInfo, error) {
	err := w.buf.Flush()
	if err != nil {
		return nil, err
	}
	w.buf = nil

	info, err := w.file.Stat()
	if err != nil {
		return nil, err
	}

	err = w.file.Close()
	if err != nil {
		return nil, err
	}
	w.file = nil

	return &info, nil
}
