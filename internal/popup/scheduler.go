// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package popup orchestrates the documentation popup.
package popup

// =============================================================================
// EVENT QUEUE SCHEDULER
// =============================================================================

// Queue is a single-threaded FIFO Scheduler. Hosts drain it once per
// event-loop turn, after their own update pass, which gives deferred tasks
// the "runs after any pending surface mutation" guarantee the controller
// relies on.
//
// Queue is not safe for concurrent use; like the controller, it belongs to
// exactly one event loop.
type Queue struct {
	tasks []func()
}

// NewQueue returns an empty task queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Drain runs all queued tasks in order. Tasks deferred while draining run
// in the same drain, after the ones already queued.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}

// Len reports the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}
