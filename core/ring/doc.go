// Package ring implements a fixed-capacity FIFO ring buffer for one producer
// and one consumer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Ring of capacity N keeps one sentinel slot free, so at most N-1 elements
// are resident and equal cursors always mean empty. Batched transfers that
// cross the end of storage are copied in two segments and are all-or-nothing.
//
// The ring performs no locking, atomics or fencing. When the producer and
// consumer run in different goroutines the caller synchronizes them, for
// example with adapters.Locked.
package ring
