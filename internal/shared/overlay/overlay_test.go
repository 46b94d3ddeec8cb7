package overlay_test

import (
	"testing"

	"go-salon/internal/shared/overlay"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	v := 42.0
	assert.Equal(t, 42.0, overlay.Value(&v, 7.0))
	assert.Equal(t, 7.0, overlay.Value(nil, 7.0))

	s := "remote"
	assert.Equal(t, "remote", overlay.Value(&s, "local"))
	assert.Equal(t, "local", overlay.Value[string](nil, "local"))
}

func TestPtr(t *testing.T) {
	a, d := 1, 2
	assert.Same(t, &a, overlay.Ptr(&a, &d))
	assert.Same(t, &d, overlay.Ptr(nil, &d))
	assert.Nil(t, overlay.Ptr[int](nil, nil))
}
