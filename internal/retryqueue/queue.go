// Package retryqueue holds the decode jobs produced by the block scanner and
// drains them with a single worker. Failed jobs go back to the tail of the
// queue after a delay until they succeed or run out of attempts, at which
// point they are dead-lettered.
package retryqueue

import "sync"

// Queue is an unbounded FIFO of jobs, safe for concurrent use. It is not
// persisted: jobs still queued when the process stops are lost.
type Queue struct {
	mu   sync.Mutex
	jobs []Job
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends job to the tail. Duplicates are accepted.
func (q *Queue) Enqueue(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.jobs = append(q.jobs, job)
}

// Dequeue removes and returns the oldest job. It reports false when the queue
// is empty.
func (q *Queue) Dequeue() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.jobs) == 0 {
		return Job{}, false
	}

	job := q.jobs[0]
	q.jobs[0] = Job{}
	q.jobs = q.jobs[1:]

	return job, true
}

// Len returns the number of queued jobs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.jobs)
}
