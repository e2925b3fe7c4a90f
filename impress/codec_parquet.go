package impress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// entryRow is the Parquet schema for exported entries.
type entryRow struct {
	Name      string `parquet:"name"`
	Path      string `parquet:"path"`
	Exists    bool   `parquet:"exists"`
	SizeBytes int64  `parquet:"size_bytes"`
}

// -----------------------------------------------------------------------------
// Parquet Codec
// -----------------------------------------------------------------------------

// parquetCodec implements Codec for Apache Parquet format.
type parquetCodec struct{}

// NewParquetCodec creates a Parquet codec with snappy column compression.
//
// Parquet needs the whole file to read it back, so Decode buffers its input.
func NewParquetCodec() Codec {
	return &parquetCodec{}
}

func (c *parquetCodec) Name() string {
	return "parquet"
}

func (c *parquetCodec) Extension() string {
	return ".parquet"
}

func (c *parquetCodec) Encode(w io.Writer, entries []Entry) error {
	rows := make([]entryRow, len(entries))
	for i, e := range entries {
		rows[i] = entryRow(e)
	}

	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows, parquet.Compression(&parquet.Snappy)); err != nil {
		return fmt.Errorf("parquet: write: %w", err)
	}
	_, err := io.Copy(w, &buf)
	return err
}

func (c *parquetCodec) Decode(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parquet: read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidFormat
	}

	rows, err := parquet.Read[entryRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrInvalidFormat
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry(row)
	}
	return entries, nil
}
