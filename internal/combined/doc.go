// Package combined benchmarks the simulation loop end to end.
//
// The container micro-benchmarks live next to each container. These
// benchmarks instead measure the pieces the life runner strings together
// on every iteration: the stop check, the tick check, input delivery from
// other goroutines into the backlog, and computing a generation.
package combined
