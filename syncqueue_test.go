package gocollect

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

// withTimeout wraps a channel receive with a timeout
func withTimeout[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case val := <-ch:
		return val
	case <-time.After(testTimeout):
		t.Fatal("Test timed out waiting for channel receive")
		var zero T
		return zero
	}
}

func ExampleNewBlockingQueue() {
	q := NewBlockingQueue[string](2)
	q.Put("a")
	q.Put("b")

	fmt.Println(q.Offer("c"))
	fmt.Println(q.Take())

	// Output:
	// false
	// a
}

func TestSyncQueueNonBlocking(t *testing.T) {
	q := NewSyncQueue(NewQueue[int]())
	assert.Equal(t, 0, q.Capacity())
	assert.True(t, q.IsEmpty())

	_, ok := q.Poll()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	assert.True(t, q.Offer(1))
	assert.True(t, q.Offer(2))
	assert.Equal(t, 2, q.Len())

	head, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, head)

	v, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSyncQueueBoundedOffer(t *testing.T) {
	q := NewBlockingQueue[int](2)
	assert.Equal(t, 2, q.Capacity())
	assert.True(t, q.Offer(1))
	assert.True(t, q.Offer(2))
	assert.False(t, q.Offer(3), "full queue should reject Offer")

	_, ok := q.Poll()
	require.True(t, ok)
	assert.True(t, q.Offer(3))
}

// A bounded-wait remove on an empty queue reports no element after the
// timeout elapses.
func TestSyncQueuePollTimeoutExpires(t *testing.T) {
	q := NewSyncQueue(NewQueue[int]())

	start := time.Now()
	_, ok := q.PollTimeout(50 * time.Millisecond)
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

// A bounded-wait remove returns the inserted element as soon as another
// goroutine inserts before the timeout.
func TestSyncQueuePollTimeoutReceives(t *testing.T) {
	q := NewSyncQueue(NewQueue[int]())

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Offer(42)
	}()

	v, ok := q.PollTimeout(testTimeout)
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSyncQueueOfferTimeout(t *testing.T) {
	q := NewBlockingQueue[int](1)
	require.True(t, q.Offer(1))

	ok := q.OfferTimeout(2, 50*time.Millisecond)
	assert.False(t, ok, "full queue should time out")

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Poll()
	}()

	ok = q.OfferTimeout(2, testTimeout)
	assert.True(t, ok)
	v, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestSyncQueuePutBlocksUntilSpace(t *testing.T) {
	q := NewBlockingQueue[int](1)
	q.Put(1)

	done := make(chan struct{})
	go func() {
		q.Put(2)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Put should block while the queue is full")
	case <-time.After(50 * time.Millisecond):
	}

	v, ok := q.Poll()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	withTimeout(t, done)
	v = q.Take()
	assert.Equal(t, 2, v)
}

func TestSyncQueueTakeBlocksUntilElement(t *testing.T) {
	q := NewSyncQueue(NewQueue[string]())

	got := make(chan string, 1)
	go func() {
		got <- q.Take()
	}()

	time.Sleep(20 * time.Millisecond)
	q.Put("hello")
	assert.Equal(t, "hello", withTimeout(t, got))
}

func TestSyncQueueClearFreesSpace(t *testing.T) {
	q := NewBlockingQueue[int](1)
	q.Put(1)

	done := make(chan struct{})
	go func() {
		q.Put(2)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Clear()
	withTimeout(t, done)
	assert.Equal(t, 1, q.Len())
}

func TestSyncQueueManyProducersConsumers(t *testing.T) {
	q := NewBlockingQueue[int](4)
	const items = 100

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range items / 4 {
				q.Put(i*1000 + j)
			}
		}()
	}

	received := make(chan int, items)
	for range 4 {
		go func() {
			for {
				v, ok := q.PollTimeout(time.Second)
				if !ok {
					return
				}
				received <- v
			}
		}()
	}

	wg.Wait()
	seen := make(map[int]bool)
	for range items {
		seen[withTimeout(t, received)] = true
	}
	assert.Equal(t, items, len(seen), "every produced element should arrive exactly once")
}

func TestSyncQueueOptionValidation(t *testing.T) {
	assert.Panics(t, func() { WithCapacity(0) })
	assert.Panics(t, func() { NewSyncQueue[int](nil) })
}
