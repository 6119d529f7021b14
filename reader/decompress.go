package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompressor wraps a raw file stream in the codec chosen by extension.
type decompressor func(r io.Reader) (io.ReadCloser, error)

var decompressors = map[string]decompressor{
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
	".lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
	".br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
}

// IsCompressed reports whether path carries a supported compression suffix.
func IsCompressed(path string) bool {
	_, ok := decompressors[strings.ToLower(filepath.Ext(path))]
	return ok
}

// decompress returns r unchanged when path has no known compression suffix.
func decompress(path string, r io.Reader) (io.ReadCloser, error) {
	fn, ok := decompressors[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return io.NopCloser(r), nil
	}
	return fn(r)
}
