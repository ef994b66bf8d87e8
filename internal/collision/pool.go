package collision

import "sync"

// slot is the rendezvous point between the orchestrator and one
// persistent worker: a lock, a condition variable used bidirectionally,
// slice parameters, a completion flag, a shutdown flag, and a tick-local
// collision counter. The lock covers only flag mutation and wait
// registration — never kernel execution, which runs lock-free over the
// slot's own slice.
type slot struct {
	mu       sync.Mutex
	cond     *sync.Cond
	complete bool
	shutdown bool

	slice  Slice
	kernel *Kernel
	moving *MovingStore

	result Result
}

func newSlot() *slot {
	s := &slot{complete: true}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// run is the worker body: wait under the predicate guard until there is
// work or a shutdown request, execute, signal completion, repeat.
func (s *slot) run() {
	s.mu.Lock()
	for {
		for s.complete && !s.shutdown {
			s.cond.Wait()
		}
		if s.shutdown {
			s.mu.Unlock()
			return
		}
		slice, kernel, moving := s.slice, s.kernel, s.moving
		s.mu.Unlock()

		result := execSlice(kernel, moving, slice)

		s.mu.Lock()
		s.result = result
		s.complete = true
		s.cond.Signal()
	}
}

// dispatch publishes slice parameters and wakes the worker. Called by the
// orchestrator; it takes the slot's lock itself for the publication.
func (s *slot) dispatch(slice Slice, kernel *Kernel, moving *MovingStore) {
	s.mu.Lock()
	s.slice = slice
	s.kernel = kernel
	s.moving = moving
	s.result = Result{}
	s.complete = false
	s.cond.Signal()
	s.mu.Unlock()
}

// awaitCompletion blocks until the worker sets complete, then returns its
// result.
func (s *slot) awaitCompletion() Result {
	s.mu.Lock()
	for !s.complete {
		s.cond.Wait()
	}
	result := s.result
	s.mu.Unlock()
	return result
}

func (s *slot) requestShutdown() {
	s.mu.Lock()
	s.complete = false
	s.shutdown = true
	s.cond.Signal()
	s.mu.Unlock()
}

// execSlice runs the kernel over every moving circle in slice, in
// ascending index order, accumulating one Result.
func execSlice(kernel *Kernel, moving *MovingStore, slice Slice) Result {
	var result Result
	collision, identity := moving.Range(slice.Lo, slice.Hi)
	for i := range collision {
		kernel.Process(&collision[i], &identity[i], &result)
	}
	return result
}

// Pool is the persistent worker pool: W-1 long-lived goroutines plus the
// orchestrator, which runs the final slice inline and is itself one of
// the W executors.
type Pool struct {
	slots []*slot
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts w-1 persistent workers. w must satisfy
// 1 <= w <= MaxWorkers.
func NewPool(w int) (*Pool, error) {
	if w < 1 || w > MaxWorkers {
		return nil, newError(ConfigurationInvalid, "worker count %d outside [1, %d]", w, MaxWorkers)
	}
	p := &Pool{slots: make([]*slot, w-1)}
	for i := range p.slots {
		p.slots[i] = newSlot()
		p.wg.Add(1)
		go func(s *slot) {
			defer p.wg.Done()
			s.run()
		}(p.slots[i])
	}
	return p, nil
}

// Workers returns W, including the orchestrator.
func (p *Pool) Workers() int { return len(p.slots) + 1 }

// Dispatch publishes each worker's slice and signals it, runs the
// orchestrator's own slice inline, then joins every worker and returns
// the per-slice results in slot order followed by the orchestrator's own
// result last.
func (p *Pool) Dispatch(slices []Slice, kernel *Kernel, moving *MovingStore) []Result {
	if len(slices) != len(p.slots)+1 {
		panic("collision: slice count must equal worker count")
	}

	for i, s := range p.slots {
		s.dispatch(slices[i], kernel, moving)
	}

	ownResult := execSlice(kernel, moving, slices[len(p.slots)])

	results := make([]Result, len(slices))
	for i, s := range p.slots {
		results[i] = s.awaitCompletion()
	}
	results[len(p.slots)] = ownResult
	return results
}

// Close requests shutdown on every slot and joins its goroutine. Safe to
// call once; subsequent calls are no-ops.
func (p *Pool) Close() {
	p.once.Do(func() {
		for _, s := range p.slots {
			s.requestShutdown()
		}
		p.wg.Wait()
	})
}
