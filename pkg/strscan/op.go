package strscan

// PeekOp is a peek-style operation bound to a scanner, such as the method
// expression (*Scanner).Peek.
type PeekOp func(s *Scanner, n int) (string, error)

// Alias names a PeekOp.
type Alias struct {
	Name string
	Op   PeekOp
}

// Aliases returns the peek operations provided by Scanner.
func Aliases() []Alias {
	return []Alias{
		{Name: "peek", Op: (*Scanner).Peek},
		{Name: "peep", Op: (*Scanner).Peep},
	}
}

// LookupAlias finds a built-in alias by name.
func LookupAlias(name string) (Alias, bool) {
	for _, alias := range Aliases() {
		if alias.Name == name {
			return alias, true
		}
	}

	return Alias{}, false
}

// Call converts arg to an int and invokes op. Conversion failures are
// reported as *ArgError wrapping ErrWrongType or ErrOutOfRange, so all three
// error kinds stay distinguishable with errors.Is. Errors name the operation
// "peek"; use Alias.Call to report under another name.
func Call(op PeekOp, s *Scanner, arg Arg) (string, error) {
	return Alias{Name: "peek", Op: op}.Call(s, arg)
}

// Call is like the package-level Call, with conversion errors named after a.
func (a Alias) Call(s *Scanner, arg Arg) (string, error) {
	n, err := arg.Int()
	if err != nil {
		return "", argError(a.Name, arg, err)
	}

	return a.Op(s, n)
}
