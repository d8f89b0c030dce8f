/*
Package sorting implements the step-indexed sorting engine behind sortstep.

# Overview

An Engine owns two arrays: the original input and a working copy that each
step mutates in place. A step is one learner-visible unit of work:

  - Bubble: one full adjacent compare/swap pass
  - Selection: one minimum search and at most one swap
  - Insertion: one key inserted into the sorted prefix

# Stepping

StepForward applies one step at the current index and advances it. The index
never exceeds len-1; once there the array is sorted and further calls only
repeat the completion message.

StepBackward keeps no history. It resets the working array to the original
and replays every step before the new index, so going back always reproduces
exactly what going forward produced.

# Tracing

Trace drives a fresh engine from step 0 to completion and collects a Frame
per step. The CLI prints these frames and the run journal stores the final one.
*/
package sorting
