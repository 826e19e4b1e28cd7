// Package strscan provides a minimal string scanner with a non-advancing
// peek operation.
package strscan

// Scanner keeps a byte position over a fixed string.
type Scanner struct {
	buf string
	pos int
}

// New returns a Scanner positioned at the start of s.
func New(s string) *Scanner {
	return &Scanner{buf: s}
}

// String returns the scanned buffer.
func (s *Scanner) String() string {
	return s.buf
}

// Pos returns the current byte position.
func (s *Scanner) Pos() int {
	return s.pos
}

// SetPos moves the scan position. A negative n counts back from the end of
// the buffer. Positions outside the buffer leave the scanner untouched and
// return ErrOutOfRange.
func (s *Scanner) SetPos(n int) error {
	if n < 0 {
		n += len(s.buf)
	}

	if n < 0 || n > len(s.buf) {
		return argError("pos=", n, ErrOutOfRange)
	}

	s.pos = n

	return nil
}

// Rest returns the part of the buffer not yet scanned.
func (s *Scanner) Rest() string {
	return s.buf[s.pos:]
}

// EOS reports whether the position is at the end of the buffer.
func (s *Scanner) EOS() bool {
	return s.pos >= len(s.buf)
}

// Peek returns up to n bytes starting at the current position without
// advancing it. Asking for more than remains yields the remaining tail.
func (s *Scanner) Peek(n int) (string, error) {
	return s.peek("peek", n)
}

// Peep is an alias of Peek.
//
// Deprecated: use Peek.
func (s *Scanner) Peep(n int) (string, error) {
	return s.peek("peep", n)
}

func (s *Scanner) peek(op string, n int) (string, error) {
	if n < 0 {
		return "", argError(op, n, ErrInvalidArgument)
	}

	rest := s.Rest()
	if n > len(rest) {
		return rest, nil
	}

	return rest[:n], nil
}
