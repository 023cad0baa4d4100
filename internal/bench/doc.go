// Package bench runs the imgbench kernels and reports their timings.
//
// A [Def] pairs a task and variant slug with a [Kernel]. The [Runner]
// executes a kernel a fixed number of times, timing only the kernel call,
// writes the final output as <slug>.png and reduces the samples with
// [Aggregate]. [Suite] ties loading, filtering, running and reporting together.
package bench
