package booking

import "sync"

// classroomLocks serializes the check-then-insert window per classroom.
// The validator alone cannot prevent two concurrent admissions racing each
// other; holding the classroom's mutex across snapshot, admission and
// insert makes the pair atomic within this process. The unique index in
// the repository covers the multi-process case.
type classroomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newClassroomLocks() *classroomLocks {
	return &classroomLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for one classroom and returns it for unlocking.
func (l *classroomLocks) lock(classroomID int64) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[classroomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[classroomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
