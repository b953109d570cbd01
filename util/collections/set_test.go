package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := make(Set[string])
	assert.Zero(t, set.Len())
	assert.False(t, set.Contains("a"))

	set.Add("a")
	set.Add("a")
	set.Add("b")
	assert.True(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))
	assert.Equal(t, 2, set.Len(), "adding twice keeps one element")

	set.Remove("a")
	assert.False(t, set.Contains("a"))
	assert.Equal(t, 1, set.Len())

	set.Remove("missing")
	assert.Equal(t, 1, set.Len())
}
