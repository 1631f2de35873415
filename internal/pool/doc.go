// Package pool provides pooled byte buffers for the archive encoder and
// typed scratch slices for the composition operators.
package pool
