package sorting

// Frame is one rendered state of a run
type Frame struct {
	Step        int    `json:"step" yaml:"step"`
	Values      []int  `json:"values" yaml:"values"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Touched     []int  `json:"touched,omitempty" yaml:"touched,omitempty"`
}

// Run is the full trace of one algorithm over one input
type Run struct {
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Input     []int     `json:"input" yaml:"input"`
	Frames    []Frame   `json:"frames" yaml:"frames"`
}

// Final returns the last frame of the run
func (r *Run) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{Values: r.Input}
	}
	return r.Frames[len(r.Frames)-1]
}

// Steps returns the number of forward steps taken
func (r *Run) Steps() int {
	return r.Final().Step
}

// Snapshot captures the engine's current state as a frame
func (e *Engine) Snapshot() Frame {
	return Frame{
		Step:        e.step,
		Values:      e.Array(),
		Explanation: e.explanation,
		Touched:     e.Touched(),
	}
}

// Trace runs algorithm a over values from step 0 until completion.
// The first frame is the initial state; each further frame follows one step.
func Trace(a Algorithm, values []int) (*Run, error) {
	e, err := NewEngine(values)
	if err != nil {
		return nil, err
	}
	e.SelectAlgorithm(a)

	run := &Run{
		Algorithm: a,
		Input:     e.Original(),
		Frames:    []Frame{e.Snapshot()},
	}

	for !e.Complete() {
		e.StepForward()
		run.Frames = append(run.Frames, e.Snapshot())
	}

	// single-element input is sorted before the first step
	if len(run.Frames) == 1 {
		run.Frames[0].Explanation = e.StepForward()
	}

	return run, nil
}
