// Package batch provides concurrent extraction of multiple URLs with a
// bounded degree of parallelism.
//
// Each URL is an independent request/response cycle with no shared mutable
// state, so extractions run concurrently without coordination beyond the
// concurrency limit. A failed extraction is recorded in its own envelope
// and never aborts the rest of the batch.
package batch
