package corpus

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compression identifies the stream codec of a corpus file.
type Compression uint8

const (
	// CompressionNone indicates a plain file.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream (.zst).
	CompressionZSTD
	// CompressionLZ4 indicates an LZ4 frame stream (.lz4).
	CompressionLZ4
	// CompressionXZ indicates an xz stream (.xz).
	CompressionXZ
)

var extensions = map[string]Compression{
	".zst":  CompressionZSTD,
	".zstd": CompressionZSTD,
	".lz4":  CompressionLZ4,
	".xz":   CompressionXZ,
}

// CompressionFor picks the codec from the file extension of name.
func CompressionFor(name string) Compression {
	return extensions[strings.ToLower(path.Ext(name))]
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionXZ:
		return "xz"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// NewReader wraps r with a decompressor for c.
//
// Closing the returned reader releases decoder resources; it does not
// close r.
func NewReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("corpus: zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("corpus: xz: %w", err)
		}
		return io.NopCloser(xr), nil
	default:
		return nil, fmt.Errorf("corpus: unsupported %s", c)
	}
}

// NewWriter wraps w with a compressor for c. The stream is only complete
// once the returned writer is closed; w itself is left open.
func NewWriter(c Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("corpus: zstd: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("corpus: xz: %w", err)
		}
		return xw, nil
	default:
		return nil, fmt.Errorf("corpus: unsupported %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
