package impress

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Export writes the resolution state of every catalog entry to w, encoded
// with codec and wrapped by compressor. Nothing is written to the store.
func (r *Resolver) Export(ctx context.Context, w io.Writer, codec Codec, compressor Compressor) error {
	if codec == nil {
		return errors.New("impress: export codec is required")
	}
	if compressor == nil {
		return errors.New("impress: export compressor is required")
	}

	cw, err := compressor.Compress(w)
	if err != nil {
		return fmt.Errorf("impress: %s compressor: %w", compressor.Name(), err)
	}
	if err := codec.Encode(cw, r.Entries(ctx)); err != nil {
		_ = cw.Close()
		return fmt.Errorf("impress: %s encode: %w", codec.Name(), err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("impress: %s compressor: %w", compressor.Name(), err)
	}
	return nil
}

// ReadExport decodes entries written by Export with the same codec and
// compressor.
func ReadExport(r io.Reader, codec Codec, compressor Compressor) ([]Entry, error) {
	if codec == nil {
		return nil, errors.New("impress: export codec is required")
	}
	if compressor == nil {
		return nil, errors.New("impress: export compressor is required")
	}

	rc, err := compressor.Decompress(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, compressor.Name(), err)
	}
	defer func() { _ = rc.Close() }()

	entries, err := codec.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("impress: %s decode: %w", codec.Name(), err)
	}
	return entries, nil
}

// ExportName returns the file name an export of base would carry, for
// example "entries.jsonl.zst".
func ExportName(base string, codec Codec, compressor Compressor) string {
	return base + codec.Extension() + compressor.Extension()
}
