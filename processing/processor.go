// Package processing orchestrates a single rotation run: it streams the
// input file through the rotation core into the output file and enforces the
// surrounding integrity checks.
package processing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"

	"github.com/hexegic/rotate/config"
	"github.com/hexegic/rotate/persistence"
	"github.com/hexegic/rotate/rotation"
)

var (
	ErrSamePath     = errors.New("input and output paths are the same file")
	ErrSizeMismatch = errors.New("output file size does not match input file size")
)

type Processor struct {
	cfg    config.Config
	logger *zap.Logger
}

type OptionFunc func(*Processor) error

func WithConfig(cfg config.Config) OptionFunc {
	return func(p *Processor) error {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		p.cfg = cfg
		return nil
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(p *Processor) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		p.logger = logger
		return nil
	}
}

func NewProcessor(opts ...OptionFunc) (*Processor, error) {
	p := &Processor{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Process rotates the contents of inPath by one bit in the given direction
// and writes the result to outPath. The input is streamed through fixed-size
// buffers and is never loaded whole into memory. A zero-length input is a
// trivial success: the output file is created empty and the rotation core is
// never invoked.
//
// After the run the output file size is compared against the input file size;
// a mismatch is reported as ErrSizeMismatch, distinct from I/O failures.
func (p *Processor) Process(ctx context.Context, dir rotation.Direction, inPath, outPath string) error {
	if filepath.Clean(inPath) == filepath.Clean(outPath) {
		return ErrSamePath
	}

	reader, err := persistence.NewFileReader(inPath, p.cfg.BufferSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	size, err := reader.Size()
	if err != nil {
		return err
	}
	numBits, err := reader.NumBits()
	if err != nil {
		return err
	}

	writer, err := persistence.NewFileWriter(outPath, p.cfg.BufferSize)
	if err != nil {
		return err
	}

	p.logger.Info("rotation: starting",
		zap.Stringer("direction", dir),
		zap.String("size", bytefmt.ByteSize(uint64(size))),
		zap.Uint64("numBits", numBits),
		zap.String("in", inPath),
		zap.String("out", outPath),
	)

	if err := p.rotate(ctx, dir, reader, writer, size); err != nil {
		_, _ = writer.Close()
		return err
	}

	info, err := writer.Close()
	if err != nil {
		return err
	}
	if (*info).Size() != size {
		return fmt.Errorf("%w; expected: %d, given: %d", ErrSizeMismatch, size, (*info).Size())
	}

	p.logger.Info("rotation: completed",
		zap.Stringer("direction", dir),
		zap.String("size", bytefmt.ByteSize(uint64(size))),
	)

	return nil
}

func (p *Processor) rotate(ctx context.Context, dir rotation.Direction, reader *persistence.FileReader, writer *persistence.FileWriter, size int64) error {
	if size == 0 {
		return nil
	}

	pr := &progressReader{
		ctx:    ctx,
		r:      reader,
		total:  size,
		rate:   int64(p.cfg.ProgressLogRate),
		logger: p.logger,
	}

	switch dir {
	case rotation.Left:
		return rotation.StreamLeft(pr, writer, size)
	case rotation.Right:
		// The wrap bit lives at the end of the input; fetch it before
		// the main pass.
		last, err := reader.LastByte()
		if err != nil {
			return err
		}
		return rotation.StreamRight(pr, writer, size, rotation.WrapRight(last))
	}

	return fmt.Errorf("invalid direction; given: %d", dir)
}

// progressReader wraps the input stream to log rotation progress and to honor
// context cancellation mid-run.
type progressReader struct {
	ctx    context.Context
	r      io.Reader
	total  int64
	read   int64
	logged int64
	rate   int64
	logger *zap.Logger
}

func (pr *progressReader) Read(p []byte) (int, error) {
	if err := pr.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if pr.read-pr.logged >= pr.rate {
		pr.logged = pr.read
		pr.logger.Info("rotation: progress",
			zap.String("read", bytefmt.ByteSize(uint64(pr.read))),
			zap.String("total", bytefmt.ByteSize(uint64(pr.total))),
		)
	}
	return n, err
}
