package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr(9002)
	assert.Equal(t, 9002, *p)

	a, b := Ptr("x"), Ptr("x")
	assert.NotSame(t, a, b)
}
