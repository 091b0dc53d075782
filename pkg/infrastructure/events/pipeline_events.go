package events

import "time"

// Event types emitted by the heuristics pipeline
const (
	StepStartedEvent   = "pipeline.step.started"
	StepCompletedEvent = "pipeline.step.completed"
)

// StepData is the payload of pipeline step events
type StepData struct {
	Step    string
	Rows    int
	Elapsed time.Duration
}

// NewStepStarted creates a step-started event for a pipeline run
func NewStepStarted(runID, step string) Event {
	return NewEvent(StepStartedEvent, runID, StepData{Step: step})
}

// NewStepCompleted creates a step-completed event carrying the row count the
// step produced and the time it took
func NewStepCompleted(runID, step string, rows int, elapsed time.Duration) Event {
	return NewEvent(StepCompletedEvent, runID, StepData{Step: step, Rows: rows, Elapsed: elapsed})
}
