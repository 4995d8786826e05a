// Package ptr provides helper functions for creating pointers to primitive types.
package ptr

// Int32 returns a pointer to the given int32 value.
func Int32(i int32) *int32 { return &i }

// Int64 returns a pointer to the given int64 value.
func Int64(i int64) *int64 { return &i }

// To returns a pointer to any value.
func To[T any](v T) *T { return &v }
