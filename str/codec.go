package str

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrOddLength indicates UTF-16 input whose byte length is not a multiple
// of two.
var ErrOddLength = errors.New("str: utf16 data has odd length")

func utf16Codec(e unicode.Endianness) encoding.Encoding {
	return unicode.UTF16(e, unicode.IgnoreBOM)
}

// DecodeUTF16LE decodes UTF-16 little-endian bytes into a wide string.
// Unpaired surrogates are replaced, never read out of bounds.
func DecodeUTF16LE(p []byte) (WideString, error) {
	return decodeUTF16(p, unicode.LittleEndian)
}

// DecodeUTF16BE decodes UTF-16 big-endian bytes into a wide string.
func DecodeUTF16BE(p []byte) (WideString, error) {
	return decodeUTF16(p, unicode.BigEndian)
}

func decodeUTF16(p []byte, e unicode.Endianness) (WideString, error) {
	if len(p) == 0 {
		return WideString{}, nil
	}
	if len(p)%2 != 0 {
		return WideString{}, ErrOddLength
	}
	decoded, err := utf16Codec(e).NewDecoder().Bytes(p)
	if err != nil {
		return WideString{}, fmt.Errorf("str: utf16 decode: %w", err)
	}
	return WideStringOf(string(decoded)), nil
}

// EncodeUTF16LE encodes w as UTF-16 little-endian bytes.
func EncodeUTF16LE(w WideString) (ByteString, error) {
	return encodeUTF16(w, unicode.LittleEndian)
}

// EncodeUTF16BE encodes w as UTF-16 big-endian bytes.
func EncodeUTF16BE(w WideString) (ByteString, error) {
	return encodeUTF16(w, unicode.BigEndian)
}

func encodeUTF16(w WideString, e unicode.Endianness) (ByteString, error) {
	if w.IsEmpty() {
		return ByteString{}, nil
	}
	encoded, err := utf16Codec(e).NewEncoder().Bytes([]byte(w.String()))
	if err != nil {
		return ByteString{}, fmt.Errorf("str: utf16 encode: %w", err)
	}
	return NewByteString(encoded), nil
}

// DecodeANSI promotes Windows-1252 bytes to a wide string.
// Fast path: pure-ASCII input needs no decoder (identical in Windows-1252
// and UTF-8).
func DecodeANSI(p []byte) (WideString, error) {
	if len(p) == 0 {
		return WideString{}, nil
	}
	if isASCII(p) {
		return WideStringOf(string(p)), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(p)
	if err != nil {
		return WideString{}, fmt.Errorf("str: windows-1252 decode: %w", err)
	}
	return WideStringOf(string(decoded)), nil
}

func isASCII(p []byte) bool {
	for _, b := range p {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
