// Package device provides the compute-device abstraction the routines and the
// test harness run against: backends, contexts, queues and linear buffers.
//
// A backend is registered at startup: RegisterDefaultBackend picks the one
// selected by build tags (opencl or cuda) and falls back to the CPU-backed
// mock when none is usable. The rest of the module only talks to the
// interfaces. Buffer contents travel between host and
// device through Read/Write calls against a queue; Synchronize converts the
// asynchronous dispatch model into the blocking contract the test harness
// relies on.
package device
