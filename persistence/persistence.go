// Package persistence provides buffered file access for the rotation
// pipeline: a streaming reader over the input file and a truncating writer
// for the output file, both with byte-size accounting for the post-run
// integrity check.
package persistence

import (
	"os"
)

// OwnerReadWrite is the file mode bits of a file which only its owner can
// read or write.
const OwnerReadWrite = os.FileMode(0o600)
