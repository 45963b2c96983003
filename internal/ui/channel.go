package ui

import (
	"errors"
	"sync"
)

// ErrChannelClosed is returned by Sender.Send once the consumer is gone.
// Producers must treat it as non-fatal: the consumer may have shut down
// deliberately.
var ErrChannelClosed = errors.New("ui channel is closed")

// channelState is the queue shared by all senders and the one receiver.
// Capacity is unbounded, so Send never blocks; messages enqueued under
// the same lock keep per-producer FIFO order.
type channelState struct {
	mu     sync.Mutex
	nempty *sync.Cond
	buf    []Message
	closed bool
}

// Sender is the producing half of the channel. It is safe for use from
// any number of goroutines and may be copied freely.
type Sender struct {
	state *channelState
}

// Receiver is the consuming half of the channel. Exactly one goroutine
// must use it.
type Receiver struct {
	state *channelState
}

// NewChannel creates the sender/receiver pair carrying messages from the
// execution threads to the active front-end.
func NewChannel() (Sender, *Receiver) {
	st := &channelState{}
	st.nempty = sync.NewCond(&st.mu)
	return Sender{state: st}, &Receiver{state: st}
}

// Send enqueues a message without blocking. It fails only with
// ErrChannelClosed, after the receiver has been closed.
func (s Sender) Send(m Message) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return ErrChannelClosed
	}
	st.buf = append(st.buf, m)
	st.nempty.Signal()
	return nil
}

// Recv blocks until a message is available or the channel is closed and
// drained, in which case ok is false.
func (r *Receiver) Recv() (m Message, ok bool) {
	st := r.state
	st.mu.Lock()
	defer st.mu.Unlock()
	for len(st.buf) == 0 && !st.closed {
		st.nempty.Wait()
	}
	if len(st.buf) == 0 {
		return nil, false
	}
	m = st.buf[0]
	st.buf = st.buf[1:]
	return m, true
}

// Close marks the consumer as gone. Subsequent sends fail with
// ErrChannelClosed; messages already enqueued can still be received.
// Close is idempotent.
func (r *Receiver) Close() {
	st := r.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.closed = true
	st.nempty.Broadcast()
}
