package impress

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
)

// streamCompressor is a Compressor described by its wrap functions.
type streamCompressor struct {
	name  string
	ext   string
	wrapW func(io.Writer) (io.WriteCloser, error)
	wrapR func(io.Reader) (io.ReadCloser, error)
}

func (c *streamCompressor) Name() string      { return c.name }
func (c *streamCompressor) Extension() string { return c.ext }

func (c *streamCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return c.wrapW(w)
}

func (c *streamCompressor) Decompress(r io.Reader) (io.ReadCloser, error) {
	return c.wrapR(r)
}

// NewNoOpCompressor leaves exports uncompressed.
func NewNoOpCompressor() Compressor {
	return &streamCompressor{
		name:  "noop",
		wrapW: func(w io.Writer) (io.WriteCloser, error) { return nopCloser{w}, nil },
		wrapR: func(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// NewGzipCompressor compresses exports with gzip (.gz).
func NewGzipCompressor() Compressor {
	return &streamCompressor{
		name:  "gzip",
		ext:   ".gz",
		wrapW: func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
		wrapR: func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) },
	}
}

// NewZstdCompressor compresses exports with Zstandard (.zst).
func NewZstdCompressor() Compressor {
	return &streamCompressor{
		name:  "zstd",
		ext:   ".zst",
		wrapW: func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
		wrapR: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	}
}

// Compressors returns every built-in compressor, uncompressed first.
func Compressors() []Compressor {
	return []Compressor{NewNoOpCompressor(), NewGzipCompressor(), NewZstdCompressor()}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
