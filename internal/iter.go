// Package internal holds iterator helpers shared by the packages of the module.
package internal

import (
	"iter"
	"slices"
)

// IterSeqOf returns a sequence over values.
func IterSeqOf[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

// IterSeqMap yields fn of every value of seq.
func IterSeqMap[T any, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}

// IterSeqFlatten yields the values of each sequence of seqs in turn.
func IterSeqFlatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeq2Flatten is IterSeqFlatten for pair sequences.
func IterSeq2Flatten[K any, V any](seqs iter.Seq[iter.Seq2[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeqConcat chains seqs.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return IterSeqFlatten(slices.Values(seqs))
}

// IterSeq2Concat chains pair seqs.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return IterSeq2Flatten(slices.Values(seqs))
}
