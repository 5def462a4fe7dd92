// Package verifying implements an opt-in sanity check for a completed
// rotation run: rotating the output back in the opposite direction must
// reproduce the input exactly.
package verifying

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spacemeshos/sha256-simd"

	"github.com/hexegic/rotate/rotation"
)

var ErrMismatch = errors.New("rotated output does not round-trip back to the input")

// Verify re-reads both files, rotates the output back in the opposite
// direction in memory, and compares sha256 digests against the input. Both
// files are loaded whole; this is a post-run sanity test, not part of the
// streaming pipeline.
func Verify(dir rotation.Direction, inPath, outPath string) error {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input for verification: %w", err)
	}
	out, err := os.ReadFile(outPath)
	if err != nil {
		return fmt.Errorf("failed to read output for verification: %w", err)
	}

	restored := rotation.Rotate(out, opposite(dir))
	if !bytes.Equal(digest(in), digest(restored)) {
		return ErrMismatch
	}

	return nil
}

func opposite(dir rotation.Direction) rotation.Direction {
	if dir == rotation.Left {
		return rotation.Right
	}
	return rotation.Left
}

func digest(data []byte) []byte {
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
