package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// DigestWriter passes writes through to an underlying writer while
// counting the bytes that were accepted and hashing them with SHA256
type DigestWriter struct {
	w     io.Writer
	h     hash.Hash
	count int64
}

// NewDigestWriter wraps w
func NewDigestWriter(w io.Writer) *DigestWriter {
	return &DigestWriter{
		w: w,
		h: sha256.New(),
	}
}

// Write implements io.Writer. Only the bytes w accepted are hashed.
func (d *DigestWriter) Write(p []byte) (int, error) {
	n, err := d.w.Write(p)
	if n > 0 {
		d.h.Write(p[:n])
		d.count += int64(n)
	}
	return n, err
}

// Count returns the number of bytes written so far
func (d *DigestWriter) Count() int64 {
	return d.count
}

// SHA256 returns the hex digest of the bytes written so far
func (d *DigestWriter) SHA256() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
