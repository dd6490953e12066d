package pixconv

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLogger_SilentUnlessSet(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger enabled after SetLogger(nil)")
	}
}

func TestConverterLogsAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	src, _ := GenerateBars(9, 9)
	_ = convertWith(t, src, WithWorkers(2))

	out := buf.String()
	for _, want := range []string{"convert start", "convert done", "width=9", "workers=2", "from=BGR8", "to=RGBA8", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestConverterQuietAboveDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	src, _ := GenerateBars(9, 9)
	_ = convertWith(t, src, WithWorkers(2))

	if buf.Len() != 0 {
		t.Errorf("conversion logged at info level:\n%s", buf.String())
	}
}

func TestSetLogger_DuringConversion(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	src := randomBuffer(t, 64, 64, 11)
	c := NewConverter(WithWorkers(4))
	defer c.Close()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			dst, err := c.Convert(src)
			if err != nil {
				t.Errorf("Convert: %v", err)
				return
			}
			if !Verify(dst, src) {
				t.Error("Verify() = false")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
