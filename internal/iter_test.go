package internal

import (
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(IterSeqOf('['), IterSeqOf[rune](), IterSeqOf('+', '-'), IterSeqOf(']'))
	assert.Equal([]rune("[+-]"), slices.Collect(seq))

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]string{"A": "1"}
	b := map[string]string{"B": "2", "C": "3"}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, all)
}

func TestIterSeqMap(t *testing.T) {
	assert := assert.New(t)

	double := func(n int) int { return n * 2 }
	assert.Equal([]int{2, 4, 6}, slices.Collect(IterSeqMap(IterSeqOf(1, 2, 3), double)))
	assert.Empty(slices.Collect(IterSeqMap(IterSeqOf[int](), double)))

	calls := 0
	for range IterSeqMap(IterSeqOf(1, 2, 3), func(n int) int { calls++; return n }) {
		break
	}
	assert.Equal(1, calls)
}

func TestIterSeqFlatten(t *testing.T) {
	assert := assert.New(t)

	words := IterSeqMap(IterSeqOf("ab", "", "c"), func(s string) iter.Seq[rune] {
		return IterSeqOf([]rune(s)...)
	})
	assert.Equal([]rune("abc"), slices.Collect(IterSeqFlatten(words)))

	pairs := IterSeq2Flatten(IterSeqOf(maps.All(map[int]int{1: 10}), maps.All(map[int]int{2: 20})))
	assert.Equal(map[int]int{1: 10, 2: 20}, maps.Collect(pairs))
}
