package logtail

import (
	"bytes"
	"strings"
	"sync"
)

const defaultMaxLines = 20

// Buffer is an io.Writer that remembers the last maxLines non-blank lines
// written to it.
type Buffer struct {
	mu      sync.Mutex
	ring    []string
	idx     int
	count   int
	partial []byte
}

// NewBuffer returns a Buffer holding at most maxLines lines. Non-positive
// values fall back to a small default.
func NewBuffer(maxLines int) *Buffer {
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	return &Buffer{ring: make([]string, maxLines)}
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := append(b.partial, p...)
	for {
		i := bytes.IndexAny(data, "\r\n")
		if i < 0 {
			break
		}
		b.push(string(data[:i]))
		data = data[i+1:]
	}
	b.partial = append(b.partial[:0], data...)
	return len(p), nil
}

// Lines returns the retained lines, oldest first, including an unterminated
// trailing fragment.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	max := len(b.ring)
	lines := make([]string, 0, b.count+1)
	if b.count == max {
		for i := 0; i < b.count; i++ {
			lines = append(lines, b.ring[(b.idx+i)%max])
		}
	} else {
		lines = append(lines, b.ring[:b.count]...)
	}
	if tail := strings.TrimSpace(string(b.partial)); tail != "" {
		if len(lines) == max {
			lines = lines[1:]
		}
		lines = append(lines, tail)
	}
	return lines
}

func (b *Buffer) push(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	max := len(b.ring)
	b.ring[b.idx] = line
	b.idx = (b.idx + 1) % max
	if b.count < max {
		b.count++
	}
}
