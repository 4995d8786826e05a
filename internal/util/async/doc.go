// Package async provides utilities for parallel task execution with
// error collection.
//
// The [Run] function executes independent operations concurrently and
// returns all errors.
package async
