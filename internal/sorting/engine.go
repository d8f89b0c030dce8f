package sorting

import (
	"fmt"
	"slices"
)

const (
	// MessageSelectAlgorithm is shown before any run has been started
	MessageSelectAlgorithm = "Select a sorting algorithm to start."
	// MessageInProgress is shown right after an algorithm is selected
	MessageInProgress = "Sorting in progress..."
	// MessageArrayUpdated is shown after new input when no run is active
	MessageArrayUpdated = "Array updated. Select a sorting algorithm to start."
)

// Engine is the step-indexed sorting state machine.
// It is not safe for concurrent use; the UI event loop owns it.
type Engine struct {
	original  []int
	working   []int
	step      int
	algorithm Algorithm
	active    bool

	explanation string
	touched     []int
	// swapped records whether the latest bubble pass moved anything
	swapped bool
}

// NewEngine creates an engine over a copy of values with no active run
func NewEngine(values []int) (*Engine, error) {
	e := &Engine{explanation: MessageSelectAlgorithm}
	if err := e.SetArray(values); err != nil {
		return nil, err
	}
	e.explanation = MessageSelectAlgorithm
	return e, nil
}

// SelectAlgorithm starts a new run: the working array is restored from the
// original and the step index returns to 0.
func (e *Engine) SelectAlgorithm(a Algorithm) {
	e.algorithm = a
	e.active = true
	e.restart()
	e.explanation = MessageInProgress
}

// SetArray replaces the input. The step index resets to 0 but the run-active
// flag and selected algorithm are kept, so an active run restarts on the new
// values. Empty input fails with ErrInvalidArrayInput and changes nothing.
func (e *Engine) SetArray(values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no values", ErrInvalidArrayInput)
	}

	e.original = slices.Clone(values)
	e.restart()

	if e.active {
		e.explanation = fmt.Sprintf("Array updated. Stepping through %s from the start.", e.algorithm.Title())
	} else {
		e.explanation = MessageArrayUpdated
	}
	return nil
}

// StepForward performs one step of the selected algorithm and returns the
// explanation. It is a no-op while no run is active. At the last index the
// array is already sorted and the completion message is returned unchanged.
func (e *Engine) StepForward() string {
	if !e.active {
		return e.explanation
	}

	if e.atEnd() {
		e.touched = nil
		e.explanation = completionMessage(e.algorithm)
		return e.explanation
	}

	e.explanation = e.apply(e.step)
	e.step++

	if e.Complete() {
		e.explanation = completionMessage(e.algorithm)
	}
	return e.explanation
}

// StepBackward moves the run back one step by replaying from the original
// array. It is a no-op at step 0.
func (e *Engine) StepBackward() {
	if e.step == 0 {
		return
	}

	target := e.step - 1
	e.restart()

	if target == 0 {
		e.explanation = MessageInProgress
		return
	}

	for e.step < target {
		e.explanation = e.apply(e.step)
		e.step++
	}
	if e.Complete() {
		e.explanation = completionMessage(e.algorithm)
	}
}

// Complete reports whether the active run has reached its completion condition
func (e *Engine) Complete() bool {
	if !e.active {
		return false
	}
	if e.atEnd() {
		return true
	}
	if e.algorithm == Bubble && e.step > 0 && !e.swapped {
		return true
	}
	return false
}

// Array returns a snapshot of the working array
func (e *Engine) Array() []int {
	return slices.Clone(e.working)
}

// Original returns a snapshot of the input array
func (e *Engine) Original() []int {
	return slices.Clone(e.original)
}

// Step returns the 0-based step index
func (e *Engine) Step() int {
	return e.step
}

// Algorithm returns the selected algorithm
func (e *Engine) Algorithm() Algorithm {
	return e.algorithm
}

// Active reports whether an algorithm has been selected
func (e *Engine) Active() bool {
	return e.active
}

// Explanation returns the text for the most recent step
func (e *Engine) Explanation() string {
	return e.explanation
}

// Touched returns the indices moved by the most recent step
func (e *Engine) Touched() []int {
	return slices.Clone(e.touched)
}

// Len returns the number of elements
func (e *Engine) Len() int {
	return len(e.working)
}

func (e *Engine) restart() {
	e.working = slices.Clone(e.original)
	e.step = 0
	e.touched = nil
	e.swapped = false
}

func (e *Engine) atEnd() bool {
	return e.step >= len(e.working)-1
}

func (e *Engine) apply(k int) string {
	var result stepResult
	switch e.algorithm {
	case Selection:
		result = selectionStep(e.working, k)
	case Insertion:
		result = insertionStep(e.working, k)
	default:
		result = bubbleStep(e.working, k)
	}
	e.touched = result.touched
	e.swapped = result.swapped
	return result.explanation
}

func completionMessage(a Algorithm) string {
	return fmt.Sprintf("%s completed! Complexity: O(n^2) Time, O(1) Space.", a.Title())
}
