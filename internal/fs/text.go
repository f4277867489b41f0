package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxMessageBytes bounds how much ReadMessage accepts.
const DefaultMaxMessageBytes = 1 << 20

const binarySniffSize = 4096

var (
	ErrMessageTooLarge = errors.New("message too large")
	ErrBinaryContent   = errors.New("message looks like binary data")
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// DecodeOptions configures how raw message bytes become parser input.
type DecodeOptions struct {
	// MaxBytes limits ReadMessage; zero means DefaultMaxMessageBytes.
	MaxBytes int64
	// NormalizeNFC composes the text so visually equal messages segment
	// and resolve to the same offsets.
	NormalizeNFC bool
}

func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxBytes: DefaultMaxMessageBytes}
}

// DecodeText turns message bytes into a valid UTF-8 string. A UTF-8 BOM is
// dropped, UTF-16 with a BOM is transcoded and invalid sequences become
// U+FFFD. Content without a BOM that contains NUL bytes is rejected with
// ErrBinaryContent.
func DecodeText(content []byte, opts DecodeOptions) (string, error) {
	if len(content) == 0 {
		return "", nil
	}
	if detectUnicodeEncoding(content) == encodingUnknown && looksBinary(content) {
		return "", ErrBinaryContent
	}

	var t transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if opts.NormalizeNFC {
		t = transform.Chain(t, norm.NFC)
	}
	out, _, err := transform.Bytes(t, content)
	if err != nil {
		return "", fmt.Errorf("decode message: %w", err)
	}
	return string(out), nil
}

// ReadMessage reads and decodes one message from r.
func ReadMessage(r io.Reader, opts DecodeOptions) (string, error) {
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxMessageBytes
	}
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}
	if int64(len(content)) > limit {
		return "", fmt.Errorf("%w: more than %s", ErrMessageTooLarge, humanize.IBytes(uint64(limit)))
	}
	return DecodeText(content, opts)
}

// ReadMessageFile reads and decodes the message stored at path.
func ReadMessageFile(path string, opts DecodeOptions) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	text, err := ReadMessage(f, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

func looksBinary(content []byte) bool {
	sample := content
	if len(sample) > binarySniffSize {
		sample = sample[:binarySniffSize]
	}
	return bytes.IndexByte(sample, 0x00) != -1
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}
