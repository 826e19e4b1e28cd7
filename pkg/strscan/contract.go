package strscan

import (
	"errors"
	"fmt"
	"math/big"
)

// ContractText is the buffer every peek contract example starts from.
const ContractText = "This is a test"

// StepKind selects what a Step does to the scanner.
type StepKind int

const (
	// StepPeek invokes the operation under test.
	StepPeek StepKind = iota
	// StepSeek moves the scanner position.
	StepSeek
)

// Step is a single action of an Example. Every peek step also checks that
// the scanner position did not move.
type Step struct {
	Kind    StepKind
	Arg     Arg
	Pos     int
	Want    string
	WantErr error
}

func (st Step) String() string {
	if st.Kind == StepSeek {
		return fmt.Sprintf("pos = %d", st.Pos)
	}

	if st.WantErr != nil {
		return fmt.Sprintf("peek(%s) fails with %q", st.Arg, st.WantErr)
	}

	return fmt.Sprintf("peek(%s) == %q", st.Arg, st.Want)
}

// Example is a described group of steps run against a fresh scanner over
// ContractText.
type Example struct {
	Desc  string
	Steps []Step
}

// BignumValue returns 2**63, the smallest positive value that overflows an
// int64.
func BignumValue() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), 63)
}

func peekStep(arg Arg, want string) Step {
	return Step{Kind: StepPeek, Arg: arg, Want: want}
}

func peekErrStep(arg Arg, err error) Step {
	return Step{Kind: StepPeek, Arg: arg, WantErr: err}
}

func seekStep(pos int) Step {
	return Step{Kind: StepSeek, Pos: pos}
}

// PeekContract returns the examples every peek alias has to satisfy.
func PeekContract() []Example {
	return []Example{
		{
			Desc: "returns at most the specified number of characters from the current position",
			Steps: []Step{
				peekStep(Int(4), "This"),
				seekStep(5),
				peekStep(Int(2), "is"),
				peekStep(Int(1000), "is a test"),
			},
		},
		{
			Desc: "returns an empty string when the passed argument is zero",
			Steps: []Step{
				peekStep(Int(0), ""),
				seekStep(5),
				peekStep(Int(0), ""),
			},
		},
		{
			Desc:  "returns an invalid argument error when the passed argument is negative",
			Steps: []Step{peekErrStep(Int(-2), ErrInvalidArgument)},
		},
		{
			Desc:  "returns an out of range error when the passed argument is a bignum",
			Steps: []Step{peekErrStep(Big(BignumValue()), ErrOutOfRange)},
		},
		{
			Desc:  "returns a wrong type error when the passed argument is not an integer",
			Steps: []Step{peekErrStep(Text("test"), ErrWrongType)},
		},
	}
}

// StepError describes the first step of an Example that did not hold.
type StepError struct {
	Index  int
	Step   Step
	Got    string
	Err    error
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Index+1, e.Step, e.Reason)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Verify runs ex against op on a new scanner over ContractText. It returns
// nil when every step holds, otherwise a *StepError for the first failure.
func Verify(op PeekOp, ex Example) error {
	return Alias{Name: "peek", Op: op}.Verify(ex)
}

// Verify runs ex against a, reporting argument errors under a.Name.
func (a Alias) Verify(ex Example) error {
	s := New(ContractText)

	for i, st := range ex.Steps {
		if st.Kind == StepSeek {
			if err := s.SetPos(st.Pos); err != nil {
				return &StepError{Index: i, Step: st, Err: err, Reason: err.Error()}
			}

			continue
		}

		before := s.Pos()
		got, err := a.Call(s, st.Arg)

		if after := s.Pos(); after != before {
			return &StepError{
				Index: i, Step: st, Got: got, Err: err,
				Reason: fmt.Sprintf("position moved from %d to %d", before, after),
			}
		}

		if st.WantErr != nil {
			if !errors.Is(err, st.WantErr) {
				return &StepError{
					Index: i, Step: st, Got: got, Err: err,
					Reason: fmt.Sprintf("want error %q, got %v", st.WantErr, err),
				}
			}

			continue
		}

		if err != nil {
			return &StepError{Index: i, Step: st, Err: err, Reason: "unexpected error: " + err.Error()}
		}

		if got != st.Want {
			return &StepError{
				Index: i, Step: st, Got: got,
				Reason: fmt.Sprintf("want %q, got %q", st.Want, got),
			}
		}
	}

	return nil
}
