package util

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := km.Lock("5551234567")
			defer unlock()

			// Unprotected increment; the keyed lock is the only guard
			counter++
		}()
	}

	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50 serialized increments", counter)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	unlockA := km.Lock("a")

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	// Holding "a" must not block "b"
	<-done
	unlockA()

	// And "a" is reusable after unlock
	unlock := km.Lock("a")
	unlock()
}
