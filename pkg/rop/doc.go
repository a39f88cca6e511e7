// Package rop holds the value types the railway packages are built on:
// Result[T], a two-track success/failure value, and Option[T], a value that
// may be absent. Composition helpers live in the solo and chain subpackages.
package rop
