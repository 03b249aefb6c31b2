package threadpool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	var order []int
	for i := range 5 {
		require.NoError(t, q.Send(Execute(JobFunc(func() { order = append(order, i) }))))
	}
	assert.Equal(t, 5, q.Len())

	for range 5 {
		msg, err := q.Receive()
		require.NoError(t, err)
		require.Equal(t, KindExecute, msg.Kind)
		msg.Job.Run()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Zero(t, q.Len())
}

func TestQueue_ReceiveBlocksUntilSend(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	got := make(chan Message, 1)
	go func() {
		msg, err := q.Receive()
		if err == nil {
			got <- msg
		}
	}()

	select {
	case <-got:
		t.Fatal("receive returned from an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.Send(Quit()))

	select {
	case msg := <-got:
		assert.Equal(t, KindQuit, msg.Kind)
	case <-time.After(time.Second):
		t.Fatal("receive did not wake up after send")
	}
}

func TestQueue_ShutdownAppendsQuitsBehindPending(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	require.NoError(t, q.Send(Execute(JobFunc(func() {}))))
	require.NoError(t, q.Send(Execute(JobFunc(func() {}))))
	require.NoError(t, q.Shutdown(3))

	assert.True(t, q.Closed())
	assert.ErrorIs(t, q.Send(Execute(JobFunc(func() {}))), ErrQueueClosed)
	assert.ErrorIs(t, q.Shutdown(1), ErrQueueClosed)

	var kinds []Kind
	for {
		msg, err := q.Receive()
		if err != nil {
			assert.ErrorIs(t, err, ErrQueueClosed)
			break
		}
		kinds = append(kinds, msg.Kind)
	}
	assert.Equal(t, []Kind{KindExecute, KindExecute, KindQuit, KindQuit, KindQuit}, kinds)
}

func TestQueue_CloseWakesBlockedReceivers(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	const receivers = 3
	errs := make(chan error, receivers)
	for range receivers {
		go func() {
			_, err := q.Receive()
			errs <- err
		}()
	}

	time.Sleep(10 * time.Millisecond)
	q.Close()

	for range receivers {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, ErrQueueClosed)
		case <-time.After(time.Second):
			t.Fatal("blocked receiver was not released by Close")
		}
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "execute", KindExecute.String())
	assert.Equal(t, "quit", KindQuit.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
