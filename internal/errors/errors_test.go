package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errRoot = New("root")

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrapf(Wrap(errRoot, "load"), "order %d", 3)

	assert.True(t, Is(err, errRoot))
	assert.Equal(t, "order 3: load: root", err.Error())
	assert.Equal(t, errRoot, Cause(err))
}

func TestStackIsRecorded(t *testing.T) {
	err := WithStack(errRoot)

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestStackIsRecorded")
	assert.Contains(t, fmt.Sprintf("%+v", Errorf("code %s", "X")), "errors_test.go")
}

func TestJoinAndAs(t *testing.T) {
	type codeErr struct{ error }
	err := Join(errRoot, codeErr{New("typed")})

	var target codeErr
	assert.True(t, As(err, &target))
	assert.True(t, Is(err, errRoot))
	assert.Equal(t, err, Cause(err))
}
