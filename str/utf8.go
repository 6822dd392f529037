package str

import (
	"unicode/utf8"

	"github.com/joshuapare/memkit/buf"
	"github.com/joshuapare/memkit/internal/bound"
)

// UTF8Decoder decodes UTF-8 one byte at a time, accumulating pending
// continuation bytes across Input calls and emitting a code point only when
// a sequence completes. Malformed sequences discard the accumulated state
// instead of emitting garbage; no input pattern can cause an out-of-bounds
// read.
type UTF8Decoder struct {
	pending int  // continuation bytes still expected
	code    rune // partially accumulated code point
	out     WideString
}

// Input feeds one byte to the decoder.
func (d *UTF8Decoder) Input(b byte) {
	switch {
	case b < 0x80:
		// ASCII terminates any incomplete sequence (discarded).
		d.pending = 0
		d.out.AppendRune(rune(b))
	case b < 0xC0:
		// Continuation byte.
		if d.pending == 0 {
			return // stray continuation, discard
		}
		d.code = d.code<<6 | rune(b&0x3F)
		d.pending--
		if d.pending == 0 {
			d.emit(d.code)
		}
	case b < 0xE0:
		d.start(rune(b&0x1F), 1)
	case b < 0xF0:
		d.start(rune(b&0x0F), 2)
	case b < 0xF8:
		d.start(rune(b&0x07), 3)
	default:
		// 5- and 6-byte forms are not valid UTF-8; drop any pending state.
		d.pending = 0
	}
}

// start begins a new multi-byte sequence, discarding any incomplete one.
func (d *UTF8Decoder) start(hi rune, continuations int) {
	d.code = hi
	d.pending = continuations
}

func (d *UTF8Decoder) emit(r rune) {
	if r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		r = utf8.RuneError
	}
	d.out.AppendRune(r)
}

// AppendRune emits r directly, bypassing decoding. Any incomplete sequence
// is discarded first.
func (d *UTF8Decoder) AppendRune(r rune) {
	d.pending = 0
	d.emit(r)
}

// Clear resets pending state and the accumulated result.
func (d *UTF8Decoder) Clear() {
	d.pending = 0
	d.code = 0
	d.out.Release()
}

// Result returns a new owner of the decoded content. Bytes of an incomplete
// trailing sequence are not represented.
func (d *UTF8Decoder) Result() WideString {
	return d.out.Clone()
}

// UTF8Encode encodes w to a UTF-8 byte string.
func UTF8Encode(w WideString) ByteString {
	if w.IsEmpty() {
		return ByteString{}
	}
	bb := buf.New(nil)
	// Sizing is only a hint; appends grow on demand.
	if hint, ok := bound.Mul(w.Len(), utf8.UTFMax); ok {
		_ = bb.EstimateSize(hint, 0)
	}
	for _, r := range w.View() {
		if err := bb.AppendRune(r); err != nil {
			break
		}
	}
	out := NewByteString(bb.Bytes())
	bb.Release()
	return out
}
