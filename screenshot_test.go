package dimension

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(800, 600)
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if len(s.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene(800, 600)
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	px := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(px, 3, 1)
	if got := img.Pix[0:4]; got[0] != 127 || got[1] != 63 || got[3] != 128 {
		t.Errorf("half alpha pixel = %v", got)
	}
	if got := img.Pix[4:8]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("opaque pixel changed: %v", got)
	}
}

func TestFlushScreenshotsWritesPNG(t *testing.T) {
	s := NewScene(8, 8)
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.Screenshot("hero visible")

	screen := ebiten.NewImage(8, 8)
	s.flushScreenshots(screen)

	entries, err := os.ReadDir(s.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("files = %d, want 1", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".png" {
		t.Errorf("file %q should be a png", entries[0].Name())
	}
	if len(s.screenshotQueue) != 0 {
		t.Error("queue should be drained after flush")
	}
}
