package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	TrySubmit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of depth queue.
// n<=0 defaults to 1; queue<0 defaults to 0 (unbuffered).
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// Submit blocks until a worker accepts the task.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// TrySubmit enqueues the task if the queue has room; it never blocks the
// caller. Returns false when the task was dropped.
func (p *pool) TrySubmit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
