package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/minilexer"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	if expected != got {
		fatalf(t, "expecting %q, got %q", expected, got)
	}
}

// ExpectDiff fails if expected and got differ, reporting the difference.
func ExpectDiff(t *testing.T, expected, got any, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, got, opts...); diff != "" {
		fatalf(t, "unexpected result (-expected +got):\n%s", diff)
	}
}

func ExpectNoError(t *testing.T, e error) {
	t.Helper()
	if e != nil {
		fatalf(t, "unexpected error: %s", e)
	}
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if minilexer.IsCode(e, expected) {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}
