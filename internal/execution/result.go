// Package execution defines the outcome types produced by the execution
// engine. The UI layer only carries these values; it never creates them
// except when decoding a serialized event stream.
package execution

import "github.com/google/uuid"

// WorkerID identifies the worker that ran a unit of work.
type WorkerID = uuid.UUID

// StatusKind discriminates the ways an execution can end.
type StatusKind string

const (
	// StatusSuccess means the execution exited cleanly with code 0.
	StatusSuccess StatusKind = "success"
	// StatusReturnCode means the execution exited with a non-zero code.
	StatusReturnCode StatusKind = "return_code"
	// StatusSignal means the execution was terminated by a signal.
	StatusSignal StatusKind = "signal"
	// StatusTimeLimit means the CPU time limit was exceeded.
	StatusTimeLimit StatusKind = "time_limit_exceeded"
	// StatusSysTimeLimit means the kernel time limit was exceeded.
	StatusSysTimeLimit StatusKind = "sys_time_limit_exceeded"
	// StatusWallTimeLimit means the wall clock limit was exceeded.
	StatusWallTimeLimit StatusKind = "wall_time_limit_exceeded"
	// StatusMemoryLimit means the memory limit was exceeded.
	StatusMemoryLimit StatusKind = "memory_limit_exceeded"
	// StatusInternalError means the sandbox failed, not the program.
	StatusInternalError StatusKind = "internal_error"
)

// Status is the exit condition of a single execution.
type Status struct {
	Kind StatusKind `json:"kind"`
	// Code is set when Kind is StatusReturnCode.
	Code int `json:"code,omitempty"`
	// Signal and SignalName are set when Kind is StatusSignal.
	Signal     int    `json:"signal,omitempty"`
	SignalName string `json:"signal_name,omitempty"`
	// Error is set when Kind is StatusInternalError.
	Error string `json:"error,omitempty"`
}

// Success reports whether the execution completed successfully.
func (s Status) Success() bool {
	return s.Kind == StatusSuccess
}

// Usage holds the resources consumed by an execution.
type Usage struct {
	CPUTime  float64 `json:"cpu_time"`
	SysTime  float64 `json:"sys_time"`
	WallTime float64 `json:"wall_time"`
	// Memory is in KiB.
	Memory uint64 `json:"memory"`
}

// Result is the outcome record of a single execution as reported by the
// engine: exit condition plus resource usage.
type Result struct {
	Status    Status `json:"status"`
	WasKilled bool   `json:"was_killed"`
	WasCached bool   `json:"was_cached"`
	Resources Usage  `json:"resources"`
}

// Success reports whether the underlying execution succeeded.
func (r Result) Success() bool {
	return r.Status.Success()
}
