// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/MapErr: transform the successful value or the error
// - Try: call a function (Out, error) and convert error to failure
// - FromOption: lift Option[T] into Result[T]
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
