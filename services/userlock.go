package services

import "sync"

// accrualLocks serializes the read-modify-write of a user's
// progression state during reflection submission. Without it, two
// concurrent reflections from the same user could both accrue from a
// stale snapshot. Locks are per user id and never evicted; the map
// stays small at MVP scale.
var accrualLocks sync.Map

// LockUser acquires the accrual lock for a user and returns the
// matching unlock
func LockUser(userID string) func() {
	v, _ := accrualLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
