package compiler_errors

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type CompilerError interface {
	error
	GetMessage() string
	GetLine() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	Errors() []CompilerError
	FailNow()
}

// bailout unwinds a failed tokenize or parse back to its entry point.
type bailout struct {
	err CompilerError
}

type CompilerErrorHandler struct {
	errors []CompilerError
}

func NewErrorHandler() ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

// FailNow aborts with the first recorded error. It must be paired with a
// deferred Recover.
func (eh *CompilerErrorHandler) FailNow() {
	if len(eh.errors) == 0 {
		panic("compiler_errors: FailNow called without errors")
	}

	panic(bailout{err: eh.errors[0]})
}

// Recover converts a FailNow panic into *errRet. Any other panic is re-raised.
func Recover(errRet *error) {
	r := recover()
	if r == nil {
		return
	}

	b, ok := r.(bailout)
	if !ok {
		panic(r)
	}
	*errRet = b.err
}

// Report writes err the way the command line presents build failures,
// followed by the offending source line when err carries one.
func Report(w io.Writer, err error, src string) {
	fmt.Fprintln(w, "Build failed with errors:")

	var ce CompilerError
	if !errors.As(err, &ce) {
		fmt.Fprintf(w, "ERROR: %s\n", err)
		return
	}

	fmt.Fprintf(w, "ERROR: %s\n", ce.GetMessage())

	line, ok := sourceLine(src, ce.GetLine())
	if !ok {
		return
	}
	fmt.Fprintf(w, "%3d | %s\n", ce.GetLine(), line)
}

func sourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}

	sc := bufio.NewScanner(strings.NewReader(src))
	lineno := 1
	for sc.Scan() {
		if lineno == n {
			return sc.Text(), true
		}
		lineno++
	}

	return "", false
}
