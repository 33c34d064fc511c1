package message

import "sync"

// DefaultCapacity is the inbox size used when none is configured.
const DefaultCapacity = 32

// Sender is the producer side of a Channel.
type Sender interface {
	// Send delivers msg and reports whether the consumer is still there.
	Send(msg Message) bool
}

// Channel is a bounded queue with many producers and one consumer. Messages
// from one producer are received in the order that producer sent them.
type Channel struct {
	ch   chan Message
	done chan struct{}
	once sync.Once
}

var _ Sender = (*Channel)(nil)

// NewChannel returns a Channel buffering up to capacity messages.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel{
		ch:   make(chan Message, capacity),
		done: make(chan struct{}),
	}
}

// Send enqueues msg, waiting only while the buffer is full. It returns false
// once the consumer has closed the channel; the message is then dropped.
func (c *Channel) Send(msg Message) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.ch <- msg:
		return true
	case <-c.done:
		return false
	}
}

// Drain returns the messages queued at the time of the call, oldest first.
// It never blocks. Only the single consumer may call it.
func (c *Channel) Drain() []Message {
	n := len(c.ch)
	if n == 0 {
		return nil
	}
	out := make([]Message, 0, n)
	for ; n > 0; n-- {
		out = append(out, <-c.ch)
	}
	return out
}

// Close tells producers the consumer is gone. Pending and future sends
// return false. Close is idempotent.
func (c *Channel) Close() {
	c.once.Do(func() { close(c.done) })
}
