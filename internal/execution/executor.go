package execution

import "time"

// CurrentJob describes what a connected worker is running right now.
type CurrentJob struct {
	// Job is a human readable description of the execution.
	Job string `json:"job"`
	// Duration is how long the job has been running.
	Duration time.Duration `json:"duration"`
}

// WorkerStatus is the status of a single worker connected to the executor.
type WorkerStatus struct {
	UUID WorkerID `json:"uuid"`
	Name string   `json:"name"`
	// CurrentJob is nil when the worker is idle.
	CurrentJob *CurrentJob `json:"current_job,omitempty"`
}

// ExecutorStatus is a snapshot of the executor: how much work is queued
// and which workers are connected.
type ExecutorStatus struct {
	ConnectedWorkers []WorkerStatus `json:"connected_workers"`
	ReadyExecs       int            `json:"ready_execs"`
	WaitingExecs     int            `json:"waiting_execs"`
}
