package compiler_errors

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeError struct {
	line int
	msg  string
}

func (e *fakeError) Error() string      { return e.msg }
func (e *fakeError) GetMessage() string { return e.msg }
func (e *fakeError) GetLine() int       { return e.line }

func run(eh ErrorHandler, fail bool) (err error) {
	defer Recover(&err)

	eh.AddError(&fakeError{line: 2, msg: "first"})
	eh.AddError(&fakeError{line: 3, msg: "second"})
	if fail {
		eh.FailNow()
	}
	return nil
}

func TestFailNow_ReturnsFirstError(t *testing.T) {
	err := run(NewErrorHandler(), true)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "first" {
		t.Errorf("err = %q, want %q", err.Error(), "first")
	}

	var ce CompilerError
	if !errors.As(err, &ce) {
		t.Fatal("expected a CompilerError")
	}
	if ce.GetLine() != 2 {
		t.Errorf("line = %d, want 2", ce.GetLine())
	}
}

func TestRecover_NoFailure(t *testing.T) {
	eh := NewErrorHandler()
	if err := run(eh, false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(eh.Errors()) != 2 {
		t.Errorf("recorded %d errors, want 2", len(eh.Errors()))
	}
}

func TestRecover_RepanicsForeignPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()

	func() (err error) {
		defer Recover(&err)
		panic("boom")
	}()
}

func TestReport(t *testing.T) {
	src := "int main(){\n  a = ;\n}"

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "compiler error with line",
			err:  &fakeError{line: 2, msg: "syntax error line 2"},
			want: []string{"Build failed with errors:", "ERROR: syntax error line 2", "  2 |   a = ;"},
		},
		{
			name: "line out of range",
			err:  &fakeError{line: 9, msg: "late"},
			want: []string{"Build failed with errors:", "ERROR: late"},
		},
		{
			name: "wrapped compiler error",
			err:  fmt.Errorf("compile: %w", &fakeError{line: 1, msg: "wrapped"}),
			want: []string{"Build failed with errors:", "ERROR: wrapped", "  1 | int main(){"},
		},
		{
			name: "plain error",
			err:  errors.New("read failed"),
			want: []string{"Build failed with errors:", "ERROR: read failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, tt.err, src)

			got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %q", len(got), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
