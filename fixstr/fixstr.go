/*
Package fixstr implements a fixed-capacity UTF-8 string buffer.

A String accumulates text in a pre-allocated byte buffer, either owned or
adopted from the caller, and refuses writes that would exceed the capacity.
It is the string-flavored sibling of package arrayvec: the same two-flavor
API (a Try variant returning an error and a plain variant that panics), the
same all-or-nothing bulk writes, and the same discipline of zeroing bytes
behind the logical length. On top of that it understands UTF-8: runes are
pushed and popped as units, and truncation refuses offsets that would cut a
multi-byte rune in half.

A String also satisfies io.Writer, io.StringWriter and io.ByteWriter, so it
can sit at the end of fmt.Fprintf and friends as a bounded sink.
*/
package fixstr

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/arrayvec"
)

// String is a fixed-capacity UTF-8 string buffer.
//
// The byte buffer spans the full capacity; the first n bytes hold the text.
// Bytes behind the text are kept at zero.
type String struct {
	buf []byte
	n   int
}

var (
	_ io.Writer       = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
)

// New creates an empty String with the given capacity in bytes.
//
// New panics if capacity is negative.
func New(capacity int) *String {
	if capacity < 0 {
		panic(fmt.Sprintf("fixstr: New: negative capacity %d", capacity))
	}
	return &String{buf: make([]byte, capacity)}
}

// Wrap creates an empty String on top of a caller-provided buffer. The
// buffer's length is the capacity; no bytes are copied or allocated.
//
// Wrap does not scrub the buffer. If it holds non-zero bytes, Check will
// report them until the buffer has been written over.
func Wrap(buf []byte) *String {
	return &String{buf: buf}
}

// From creates a String holding text, with capacity equal to its length.
// The resulting String is full.
func From(text string) *String {
	return &String{buf: []byte(text), n: len(text)}
}

// Len returns the text length in bytes.
func (s *String) Len() int {
	return s.n
}

// Cap returns the buffer capacity in bytes.
func (s *String) Cap() int {
	return len(s.buf)
}

// Remaining returns the number of free bytes.
func (s *String) Remaining() int {
	return len(s.buf) - s.n
}

// IsEmpty reports whether the String holds no text.
func (s *String) IsEmpty() bool {
	return s.n == 0
}

// IsFull reports whether the buffer has no free bytes left.
func (s *String) IsFull() bool {
	return s.n == len(s.buf)
}

// String returns a copy of the text.
func (s *String) String() string {
	return string(s.buf[:s.n])
}

// Bytes returns a copied byte slice of the text.
func (s *String) Bytes() []byte {
	return append([]byte(nil), s.buf[:s.n]...)
}

// Storage returns the full backing buffer, including free bytes.
//
// Mutating it invalidates the String's guarantees; Check will tell.
func (s *String) Storage() []byte {
	return s.buf
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside the text.
func (s *String) IsCharBoundary(offset int) bool {
	if offset == 0 || offset == s.n {
		return true
	}
	if offset < 0 || offset > s.n {
		return false
	}
	return utf8.RuneStart(s.buf[offset])
}

// TryPushString appends text, or returns a capacity error carrying the
// rejected text. The buffer is untouched on error.
func (s *String) TryPushString(text string) error {
	if len(text) > s.Remaining() {
		return &arrayvec.CapacityError[string]{Item: text}
	}
	copy(s.buf[s.n:], text)
	s.n += len(text)
	return nil
}

// PushString appends text and panics if it does not fit.
func (s *String) PushString(text string) {
	if err := s.TryPushString(text); err != nil {
		panic(fmt.Sprintf("fixstr: PushString: insufficient capacity (len %d, cap %d, need %d)",
			s.n, len(s.buf), len(text)))
	}
}

// TryPushRune appends the UTF-8 encoding of r, or returns a capacity error
// carrying the rejected rune.
//
// Invalid runes are pushed as U+FFFD, matching utf8.AppendRune.
func (s *String) TryPushRune(r rune) error {
	var tmp [utf8.UTFMax]byte
	enc := utf8.AppendRune(tmp[:0], r)
	if len(enc) > s.Remaining() {
		return &arrayvec.CapacityError[rune]{Item: r}
	}
	copy(s.buf[s.n:], enc)
	s.n += len(enc)
	return nil
}

// TryPushByte appends a single byte, or returns a capacity error carrying it.
//
// Pushing an arbitrary byte can leave the text invalid as UTF-8; Check will
// report that.
func (s *String) TryPushByte(b byte) error {
	if s.IsFull() {
		return &arrayvec.CapacityError[byte]{Item: b}
	}
	s.buf[s.n] = b
	s.n++
	return nil
}

// PopRune removes and returns the last rune of the text.
//
// The vacated bytes are zeroed. If the text ends in invalid UTF-8, a single
// byte is removed and utf8.RuneError returned. ok is false on an empty
// String.
func (s *String) PopRune() (r rune, ok bool) {
	if s.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.buf[:s.n])
	for i := s.n - size; i < s.n; i++ {
		s.buf[i] = 0
	}
	s.n -= size
	return r, true
}

// Truncate shortens the text to length bytes and zeroes the vacated bytes.
// It is a no-op if length is not smaller than the current length.
//
// Returns ErrIndexOutOfBounds for negative length and ErrNotCharBoundary if
// the offset would cut a rune in half; the text is untouched on error.
func (s *String) Truncate(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: Truncate(%d)", ErrIndexOutOfBounds, length)
	}
	if length >= s.n {
		return nil
	}
	if !s.IsCharBoundary(length) {
		return fmt.Errorf("%w: Truncate(%d)", ErrNotCharBoundary, length)
	}
	for i := length; i < s.n; i++ {
		s.buf[i] = 0
	}
	s.n = length
	return nil
}

// Clear removes all text and zeroes the buffer prefix it occupied.
func (s *String) Clear() {
	for i := 0; i < s.n; i++ {
		s.buf[i] = 0
	}
	s.n = 0
}

// Write appends p. If p does not fit in the remaining capacity, nothing is
// written and Write returns (0, arrayvec.ErrCapacity).
func (s *String) Write(p []byte) (int, error) {
	if len(p) > s.Remaining() {
		return 0, arrayvec.ErrCapacity
	}
	copy(s.buf[s.n:], p)
	s.n += len(p)
	return len(p), nil
}

// WriteString appends text with the same all-or-nothing contract as Write.
func (s *String) WriteString(text string) (int, error) {
	if len(text) > s.Remaining() {
		return 0, arrayvec.ErrCapacity
	}
	copy(s.buf[s.n:], text)
	s.n += len(text)
	return len(text), nil
}

// WriteByte appends a single byte, satisfying io.ByteWriter.
func (s *String) WriteByte(b byte) error {
	return s.TryPushByte(b)
}

// WriteRune appends the UTF-8 encoding of r and returns its length in bytes.
func (s *String) WriteRune(r rune) (int, error) {
	before := s.n
	if err := s.TryPushRune(r); err != nil {
		return 0, err
	}
	return s.n - before, nil
}

// Reader returns a reader for the bytes of the text.
//
// The reader tracks a byte cursor and sees mutations of the String: it reads
// whatever text is live at the time of each Read call and reports EOF once
// the cursor has passed the end of the text.
func (s *String) Reader() io.Reader {
	return &stringReader{str: s}
}

type stringReader struct {
	str    *String
	cursor int
}

func (sr *stringReader) Read(p []byte) (n int, err error) {
	if sr.cursor >= sr.str.n {
		return 0, io.EOF
	}
	n = copy(p, sr.str.buf[sr.cursor:sr.str.n])
	sr.cursor += n
	return n, nil
}

// Check verifies the String's internal invariants.
//
// It is intentionally strict and meant for tests: it validates the text as
// UTF-8 and scans every free byte for a stale non-zero value.
func (s *String) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil string", arrayvec.ErrInvalidState)
	}
	if s.n < 0 {
		return fmt.Errorf("%w: negative length %d", arrayvec.ErrInvalidState, s.n)
	}
	if s.n > len(s.buf) {
		return fmt.Errorf("%w: length exceeds capacity (%d > %d)", arrayvec.ErrInvalidState, s.n, len(s.buf))
	}
	if !utf8.Valid(s.buf[:s.n]) {
		return fmt.Errorf("%w: text of length %d", ErrInvalidUTF8, s.n)
	}
	for i := s.n; i < len(s.buf); i++ {
		if s.buf[i] != 0 {
			return fmt.Errorf("%w: free byte %d is not zeroed", arrayvec.ErrInvalidState, i)
		}
	}
	return nil
}
