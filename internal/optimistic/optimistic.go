// Package optimistic factors the update-then-maybe-rollback pattern used by
// every mutating list flow: mutate the in-memory list first so the view
// reflects the change immediately, then restore the pre-mutation snapshot
// verbatim if the store write fails.
package optimistic

import (
	"slices"
)

// Rollback restores the list exactly as it was before the mutation began.
type Rollback[T any] func() []T

// Begin snapshots list, applies the mutation to a copy and returns the
// mutated list plus a rollback. The caller shows the mutated list right
// away, runs the store write asynchronously, and invokes the rollback only
// if that write fails.
func Begin[T any](list []T, apply func([]T) []T) ([]T, Rollback[T]) {
	snapshot := slices.Clone(list)
	next := apply(slices.Clone(list))
	return next, func() []T {
		return slices.Clone(snapshot)
	}
}

// Apply is the synchronous form used by command-line flows: the write runs
// inline and the snapshot is returned on failure.
func Apply[T any](list []T, apply func([]T) []T, write func() error) ([]T, error) {
	next, rollback := Begin(list, apply)
	if err := write(); err != nil {
		return rollback(), err
	}
	return next, nil
}

// RemoveByID builds a mutation that drops the single element whose id
// matches, leaving the rest in their original order.
func RemoveByID[T any](id string, idOf func(T) string) func([]T) []T {
	return func(list []T) []T {
		return slices.DeleteFunc(list, func(v T) bool {
			return idOf(v) == id
		})
	}
}

// UpdateByID builds a mutation that rewrites the single element whose id
// matches, in place.
func UpdateByID[T any](id string, idOf func(T) string, update func(T) T) func([]T) []T {
	return func(list []T) []T {
		for i, v := range list {
			if idOf(v) == id {
				list[i] = update(v)
			}
		}
		return list
	}
}
