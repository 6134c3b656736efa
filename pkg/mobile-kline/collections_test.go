package mobilekline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_AddGet(t *testing.T) {
	array := NewStringArray().Add("1min").Add("5min")

	assert.Equal(t, 2, array.Size())
	assert.Equal(t, "1min", array.Get(0))
	assert.Equal(t, "5min", array.Get(1))
	assert.Equal(t, []string{"1min", "5min"}, array.All())
}

func TestArray_GetOutOfBounds(t *testing.T) {
	array := NewStringArray()

	assert.Equal(t, "", array.Get(0))
	assert.Equal(t, "", array.Get(-1))
}
