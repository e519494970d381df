package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "run 'xmatrix setup' first")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "run 'xmatrix setup' first", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	// Format with stack trace
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrColumnMissing, "sheet 'Container XPaths'")
	err = Wrapf(err, "importing %s", "matrix.xlsx")

	assert.True(t, Is(err, ErrColumnMissing))
	assert.False(t, Is(err, ErrSheetMissing))
	assert.Contains(t, err.Error(), "required column missing")
}

func TestIsStoreUnavailable(t *testing.T) {
	assert.False(t, IsStoreUnavailable(nil))
	assert.False(t, IsStoreUnavailable(New("other")))
	assert.True(t, IsStoreUnavailable(ErrStoreUnavailable))
	assert.True(t, IsStoreUnavailable(Wrap(ErrStoreUnavailable, "query aborted")))
}

func TestIsParseFailure(t *testing.T) {
	assert.False(t, IsParseFailure(nil))
	assert.True(t, IsParseFailure(Wrap(ErrParseFailure, "no JSON payload in model output")))
}

func TestIsColumnMissing(t *testing.T) {
	assert.False(t, IsColumnMissing(nil))
	assert.False(t, IsColumnMissing(ErrSheetMissing))
	assert.True(t, IsColumnMissing(Wrapf(ErrColumnMissing, "column %q", "Unique ID")))
}

func ExampleNew() {
	err := New("something went wrong")
	fmt.Println(err)
	// Output: something went wrong
}

func ExampleWrap() {
	baseErr := New("connection failed")
	err := Wrap(baseErr, "failed to open record store")
	fmt.Println(err)
	// Output: failed to open record store: connection failed
}
