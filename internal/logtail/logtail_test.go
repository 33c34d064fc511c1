package logtail

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestBuffer_KeepsLastLines(t *testing.T) {
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "default (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "default (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
		{
			name:     "single (1)",
			maxLines: 1,
			expected: expectedAll[9:],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.maxLines)
			if _, err := b.Write([]byte(content.String())); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := b.Lines(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lines() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBuffer_SplitWritesAndLineEndings(t *testing.T) {
	b := NewBuffer(10)
	chunks := []string{"WARN", "ING: slow\r\n", "\n\n", "[dl] 1%\r[dl] 2", "%\rERROR: bad", " url"}
	for _, c := range chunks {
		if _, err := b.Write([]byte(c)); err != nil {
			t.Fatalf("Write(%q) error = %v", c, err)
		}
	}

	want := []string{"WARNING: slow", "[dl] 1%", "[dl] 2%", "ERROR: bad url"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
}

func TestBuffer_PartialLineEvictsOldest(t *testing.T) {
	b := NewBuffer(2)
	_, _ = b.Write([]byte("a\nb\nc"))

	want := []string{"b", "c"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
}

func TestBuffer_BlankLinesDropped(t *testing.T) {
	b := NewBuffer(3)
	if got := b.Lines(); len(got) != 0 {
		t.Fatalf("Lines() = %q, want none", got)
	}
	_, _ = b.Write([]byte("   \n\r\n"))
	if got := b.Lines(); len(got) != 0 {
		t.Fatalf("Lines() = %q, want none", got)
	}
}

func TestBuffer_ConcurrentWriters(t *testing.T) {
	b := NewBuffer(5)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = fmt.Fprintf(b, "writer %d line %d\n", n, j)
			}
		}(i)
	}
	wg.Wait()

	if got := len(b.Lines()); got != 5 {
		t.Fatalf("len(Lines()) = %d, want 5", got)
	}
}
