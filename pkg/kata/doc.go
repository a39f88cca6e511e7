// Package kata collects small value-semantics exercises: immutable and
// mutable bindings, shadowing, tuples modelled as multiple returns or small
// structs, and numeric conversions that saturate instead of wrapping.
package kata
