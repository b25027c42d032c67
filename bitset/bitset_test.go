package bitset_test

import (
	"testing"

	"github.com/kpavlov/graphsrv/bitset"
	"github.com/stretchr/testify/assert"
)

func TestSetClearTest(t *testing.T) {
	b := bitset.New(70) // spans two words
	assert.True(t, b.IsEmpty())

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(69)
	assert.True(t, b.Test(0))
	assert.True(t, b.Test(63))
	assert.True(t, b.Test(64))
	assert.True(t, b.Test(69))
	assert.False(t, b.Test(1))
	assert.Equal(t, 4, b.Count())

	b.Clear(64)
	assert.False(t, b.Test(64))
	assert.Equal(t, 3, b.Count())
}

func TestOutOfRangeIsNoop(t *testing.T) {
	b := bitset.New(8)
	b.Set(-1)
	b.Set(100)
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Test(-1))
	assert.False(t, b.Test(100))
}

func TestCloneIsIndependent(t *testing.T) {
	b := bitset.New(8)
	b.Set(3)
	c := b.Clone()
	c.Set(4)
	assert.False(t, b.Test(4))
	assert.True(t, c.Test(3))
}

func TestUnionIntersectDifference(t *testing.T) {
	a := bitset.New(8)
	a.Set(1)
	a.Set(2)
	a.Set(3)

	b := bitset.New(8)
	b.Set(2)
	b.Set(3)
	b.Set(4)

	u := a.Clone()
	u.Union(b)
	assert.Equal(t, []int{1, 2, 3, 4}, u.Slice())

	i := a.Clone()
	i.Intersect(b)
	assert.Equal(t, []int{2, 3}, i.Slice())

	d := a.Clone()
	d.Difference(b)
	assert.Equal(t, []int{1}, d.Slice())
}

func TestAndAndNotOrHelpers(t *testing.T) {
	a := bitset.New(8)
	a.Set(1)
	a.Set(2)

	b := bitset.New(8)
	b.Set(2)
	b.Set(3)

	assert.Equal(t, []int{2}, bitset.And(a, b).Slice())
	assert.Equal(t, []int{1}, bitset.AndNot(a, b).Slice())
	assert.Equal(t, []int{1, 2, 3}, bitset.Or(a, b).Slice())

	// Originals untouched.
	assert.Equal(t, []int{1, 2}, a.Slice())
	assert.Equal(t, []int{2, 3}, b.Slice())
}

func TestEachAscendingAcrossWordBoundary(t *testing.T) {
	b := bitset.New(130)
	want := []int{0, 5, 63, 64, 65, 129}
	for _, i := range want {
		b.Set(i)
	}

	var got []int
	b.Each(func(i int) { got = append(got, i) })
	assert.Equal(t, want, got)
	assert.Equal(t, want, b.Slice())
}

func TestCountAndIsEmptyAgainstReferenceModel(t *testing.T) {
	const n = 200
	ref := map[int]struct{}{}
	b := bitset.New(n)
	for _, i := range []int{0, 1, 64, 127, 128, 199} {
		b.Set(i)
		ref[i] = struct{}{}
	}
	assert.Equal(t, len(ref), b.Count())
	assert.False(t, b.IsEmpty())

	empty := bitset.New(n)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Count())
}
