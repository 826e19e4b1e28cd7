package strscan

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ArgKind tags the value held by an Arg.
type ArgKind int

const (
	// KindInt is an integer that fits the platform int.
	KindInt ArgKind = iota
	// KindBig is an arbitrary precision integer.
	KindBig
	// KindText is a string value.
	KindText
	// KindOther is any other value.
	KindOther
)

func (k ArgKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBig:
		return "big"
	case KindText:
		return "text"
	case KindOther:
		return "other"
	}

	return "ArgKind(" + strconv.Itoa(int(k)) + ")"
}

// Arg is a loosely typed argument for operations that take an integer. It
// lets callers hand over values a plain int parameter would reject at compile
// time, so the resulting error can be observed.
type Arg struct {
	kind  ArgKind
	n     int
	big   *big.Int
	text  string
	other any
}

// Int wraps an int.
func Int(n int) Arg {
	return Arg{kind: KindInt, n: n}
}

// Big wraps an arbitrary precision integer. The value is copied.
func Big(n *big.Int) Arg {
	return Arg{kind: KindBig, big: new(big.Int).Set(n)}
}

// Text wraps a string.
func Text(s string) Arg {
	return Arg{kind: KindText, text: s}
}

// ArgOf classifies an arbitrary Go value.
func ArgOf(v any) Arg {
	switch x := v.(type) {
	case Arg:
		return x
	case int:
		return Int(x)
	case int8:
		return Int(int(x))
	case int16:
		return Int(int(x))
	case int32:
		return Int(int(x))
	case int64:
		return Big(big.NewInt(x)).normalize()
	case uint:
		return Big(new(big.Int).SetUint64(uint64(x))).normalize()
	case uint8:
		return Int(int(x))
	case uint16:
		return Int(int(x))
	case uint32:
		return Big(new(big.Int).SetUint64(uint64(x))).normalize()
	case uint64:
		return Big(new(big.Int).SetUint64(x)).normalize()
	case *big.Int:
		if x == nil {
			return Arg{kind: KindOther}
		}

		return Big(x)
	case string:
		return Text(x)
	}

	return Arg{kind: KindOther, other: v}
}

// normalize turns a big value that fits an int into KindInt.
func (a Arg) normalize() Arg {
	if a.kind != KindBig {
		return a
	}

	if n, ok := fitsInt(a.big); ok {
		return Int(n)
	}

	return a
}

// Kind reports the tag of a.
func (a Arg) Kind() ArgKind {
	return a.kind
}

// Int converts a to an int. Text and other values fail with ErrWrongType,
// integers that do not fit an int fail with ErrOutOfRange.
func (a Arg) Int() (int, error) {
	switch a.kind {
	case KindInt:
		return a.n, nil
	case KindBig:
		if n, ok := fitsInt(a.big); ok {
			return n, nil
		}

		return 0, ErrOutOfRange
	case KindText, KindOther:
		return 0, ErrWrongType
	}

	return 0, ErrWrongType
}

func (a Arg) String() string {
	switch a.kind {
	case KindInt:
		return strconv.Itoa(a.n)
	case KindBig:
		return a.big.String()
	case KindText:
		return strconv.Quote(a.text)
	case KindOther:
		return fmt.Sprintf("%T(%v)", a.other, a.other)
	}

	return "?"
}

func fitsInt(n *big.Int) (int, bool) {
	if !n.IsInt64() {
		return 0, false
	}

	v := n.Int64()
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}

	return int(v), true
}
