package commands

import (
	"errors"
	"testing"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopy(t *testing.T) {
	cb := &fakeClipboard{}
	msg := Copy(cb, "2:30 PM")()

	copied, ok := msg.(CopiedMsg)
	if !ok {
		t.Fatalf("expected CopiedMsg, got %T", msg)
	}
	if copied.Text != "2:30 PM" {
		t.Errorf("CopiedMsg.Text = %q, want 2:30 PM", copied.Text)
	}
	if cb.text != "2:30 PM" {
		t.Errorf("clipboard = %q, want 2:30 PM", cb.text)
	}
}

func TestCopy_Failure(t *testing.T) {
	boom := errors.New("no display")
	msg := Copy(&fakeClipboard{err: boom}, "14:30")()

	failed, ok := msg.(CopyFailedMsg)
	if !ok {
		t.Fatalf("expected CopyFailedMsg, got %T", msg)
	}
	if !errors.Is(failed.Err, boom) {
		t.Errorf("CopyFailedMsg.Err = %v, want %v", failed.Err, boom)
	}
	if failed.Text != "14:30" {
		t.Errorf("CopyFailedMsg.Text = %q, want 14:30", failed.Text)
	}
}

func TestClearCopiedAfter(t *testing.T) {
	if cmd := ClearCopiedAfter(0, 3); cmd == nil {
		t.Fatal("ClearCopiedAfter returned nil command")
	}
}
