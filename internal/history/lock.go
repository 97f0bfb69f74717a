package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the history write lock.
var ErrLocked = errors.New("history database is locked by another writer")

const (
	lockRetryDelay  = 50 * time.Millisecond
	defaultLockWait = 5 * time.Second
)

// LockPath returns the sidecar lock file guarding writes to the database.
func (s *Store) LockPath() string {
	return s.path + ".lock"
}

// AcquireWriteLock blocks until the write lock is held or ctx ends. The
// returned function releases the lock.
func (s *Store) AcquireWriteLock(ctx context.Context) (func() error, error) {
	ctx = ensureContext(ctx)
	lock := flock.New(s.LockPath())
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLocked, s.LockPath(), ctxErr)
		}
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, s.LockPath())
	}
	return lock.Unlock, nil
}

// withWriteLock runs op while holding the write lock. Callers without a
// deadline wait at most defaultLockWait.
func (s *Store) withWriteLock(ctx context.Context, op func(context.Context) error) (err error) {
	ctx = ensureContext(ctx)
	lockCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, defaultLockWait)
		defer cancel()
	}
	unlock, err := s.AcquireWriteLock(lockCtx)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release history lock: %w", unlockErr)
		}
	}()
	return op(ctx)
}
