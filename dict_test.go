package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_dict(t *testing.T) {
	d := NewDict(3)
	assert.Equal(t, Dict{NoLetter, NoLetter, NoLetter}, d)
	assert.Equal(t, 0, d.ImageSize())

	d = Dict{2, 0, 2}
	assert.Equal(t, 3, d.ImageSize())
	assert.False(t, d.Injective())

	id := d.Invert()
	assert.Len(t, id, 3)
	assert.Equal(t, []int{1}, id[0])
	assert.Empty(t, id[1])
	assert.Equal(t, []int{0, 2}, id[2])

	assert.True(t, Dict{1, 0}.Injective())
	// NoLetter entries never collide
	assert.True(t, Dict{NoLetter, 0, NoLetter}.Injective())
}

func Test_pairDict(t *testing.T) {
	d := NewPairDict(2, 3)
	assert.Equal(t, NoLetter, d.At(1, 2))
	assert.Equal(t, 0, d.ImageSize())

	assert.Nil(t, d.Set(1, 2, 4))
	assert.Equal(t, 4, d.At(1, 2))
	assert.Equal(t, NoLetter, d.At(0, 0))
	assert.Equal(t, 5, d.ImageSize())

	assert.ErrorIs(t, d.Set(2, 0, 0), ErrLetterOutOfRange)
	assert.ErrorIs(t, d.Set(0, 3, 0), ErrLetterOutOfRange)

	id := IdentityPairDict(2)
	assert.Equal(t, 0, id.At(0, 0))
	assert.Equal(t, 1, id.At(1, 1))
	assert.Equal(t, NoLetter, id.At(0, 1))
	assert.Equal(t, 2, id.ImageSize())
}
