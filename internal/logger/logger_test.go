package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
}

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := NewAt(path)
	l.now = fixedClock

	l.Log("hello")
	l.Infof("mode %s", "study")

	lines := l.Lines()
	want := []string{
		"[2026-03-04 05:06:07] hello",
		"[2026-03-04 05:06:07] INFO mode study",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := string(data); got != strings.Join(want, "\n")+"\n" {
		t.Errorf("file contents = %q", got)
	}
}

func TestLevels(t *testing.T) {
	l := NewAt("")
	l.Warnf("w %d", 1)
	if !strings.HasSuffix(l.Last(), "WARN w 1") {
		t.Errorf("Last() = %q", l.Last())
	}
	l.Errorf("e")
	if !strings.HasSuffix(l.Last(), "ERROR e") {
		t.Errorf("Last() = %q", l.Last())
	}
}

func TestLastEmpty(t *testing.T) {
	if got := NewAt("").Last(); got != "" {
		t.Errorf("Last() = %q", got)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	l := NewAt("")
	for i := 0; i < maxLines+20; i++ {
		l.Log("x")
	}
	if n := len(l.Lines()); n != maxLines {
		t.Errorf("kept %d lines, want %d", n, maxLines)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Fatal("Lines exposed internal slice")
	}
}

func TestConcurrentLog(t *testing.T) {
	l := NewAt("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				l.Log("line")
			}
		}()
	}
	wg.Wait()
	if n := len(l.Lines()); n != 160 {
		t.Errorf("got %d lines, want 160", n)
	}
}
