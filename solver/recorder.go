// SPDX-License-Identifier: MIT

package solver

// Recorder accumulates the ordered step trace of a single solve.
//
// It is an owned accumulator: each algorithm creates one, threads it through
// its loop and hands the steps back inside the Result. Every append performs
// a deep copy of all arguments (snapshot-at-append), so the caller may keep
// mutating its working state freely after recording.
//
// Recorder is not safe for concurrent use; a solve is single-threaded and
// each call owns its own Recorder, so no locking is needed.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Snapshot appends a direct-method step: a full copy of the coefficient
// matrix rows and the right-hand side, with a description and highlights.
// Complexity: O(n²) per call (the matrix copy dominates).
func (r *Recorder) Snapshot(rows [][]float64, rhs []float64, desc string, hl Highlights) {
	r.steps = append(r.steps, Step{
		Matrix:      copyRows(rows),
		Vector:      copyVec(rhs),
		Description: desc,
		Highlights:  copyHighlights(hl),
	})
}

// Iterate appends an iterative-method step: the current approximation and
// the error history accumulated so far. Complexity: O(n + iterations).
func (r *Recorder) Iterate(x, errHistory []float64, desc string) {
	r.steps = append(r.steps, Step{
		XCurrent:     copyVec(x),
		ErrorHistory: copyVec(errHistory),
		Description:  desc,
	})
}

// Steps returns the recorded trace. The Recorder must not be appended to
// afterwards; ownership of the slice passes to the caller.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// copyRows deep-copies row-major nested slices. Nil stays nil.
func copyRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = copyVec(rows[i])
	}

	return out
}

// copyVec copies a float64 slice. Nil stays nil so optional fields remain
// absent rather than empty.
func copyVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// copyHighlights copies the advisory index sets.
func copyHighlights(hl Highlights) Highlights {
	out := Highlights{}
	if hl.Rows != nil {
		out.Rows = make([]int, len(hl.Rows))
		copy(out.Rows, hl.Rows)
	}
	if hl.Cols != nil {
		out.Cols = make([]int, len(hl.Cols))
		copy(out.Cols, hl.Cols)
	}
	if hl.Cells != nil {
		out.Cells = make([][2]int, len(hl.Cells))
		copy(out.Cells, hl.Cells)
	}

	return out
}
