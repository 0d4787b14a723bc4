package services

import (
	"sync"
	"testing"
)

func TestLockUserSerializes(t *testing.T) {
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := LockUser("u1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("Expected 50 serialized increments, got %d", counter)
	}
}

func TestLockUserIndependentUsers(t *testing.T) {
	unlockA := LockUser("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := LockUser("b")
		unlockB()
		close(done)
	}()

	// Would deadlock if locks were shared across users
	<-done
}
