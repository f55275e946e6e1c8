package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestDeref(t *testing.T) {
	assert.Equal(t, "", deref[string](nil))
	assert.Equal(t, "x", deref(ptr("x")))
	assert.Equal(t, 0, deref(ptr(0)))
}
