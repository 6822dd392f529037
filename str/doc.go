// Package str implements reference-counted copy-on-write byte and wide
// strings, non-owning views, and the text codecs that bridge them.
//
// # Sharing Model
//
// ByteString and WideString point at shared, ref-counted backing storage.
// Clone() produces another logical owner of the same storage (refcount + 1)
// without copying; Release() drops ownership and frees the storage when the
// count reaches zero. A string holding no storage is the canonical empty
// string and never allocates.
//
// Every mutator is copy-before-write: when the backing storage is shared
// (refcount > 1) it is cloned privately first, so other holders observe the
// value as it was at Clone() time. When the holder is unique, mutations run
// in place without allocation churn.
//
// Plain Go assignment of a ByteString copies the struct but not the
// refcount; the result is an alias of the same logical owner, not a new
// owner. Use Clone() wherever a new logical owner is intended.
//
// # Refcounts and Goroutines
//
// Refcounts are atomic, so Clone and Release may race across goroutines.
// Content access is not synchronized: mutating a string while another
// goroutine reads the same instance requires external serialization, exactly
// like the containers in the rest of this module.
//
// # Views
//
// ByteView and WideView are pointer+length views with no ownership. A view
// is valid only while the memory it references is; mutating an owning string
// in a way that reallocates its storage invalidates views obtained from it.
// This is a documented lifetime hazard, not something the package detects.
//
// # Codecs
//
// UTF8Decoder is a stateful byte-at-a-time decoder that discards malformed
// sequences instead of emitting garbage. DecodeUTF16LE/BE and the encode
// counterparts use golang.org/x/text/encoding/unicode; DecodeANSI promotes
// Windows-1252 bytes with an ASCII fast path. Malformed input is replaced or
// truncated, never read out of bounds.
package str
