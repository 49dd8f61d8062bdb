package lockset

import "testing"

func TestTryLockExcludesConcurrentHolder(t *testing.T) {
	s := New()

	release, ok := s.TryLock("file-1")
	if !ok {
		t.Fatal("expected first TryLock to succeed")
	}

	if _, ok := s.TryLock("file-1"); ok {
		t.Fatal("expected second TryLock on the same key to fail while held")
	}

	release()

	release2, ok := s.TryLock("file-1")
	if !ok {
		t.Fatal("expected TryLock to succeed again after release")
	}
	release2()
}

func TestTryLockIsIndependentPerKey(t *testing.T) {
	s := New()

	releaseA, ok := s.TryLock("file-a")
	if !ok {
		t.Fatal("expected lock on file-a to succeed")
	}
	defer releaseA()

	releaseB, ok := s.TryLock("file-b")
	if !ok {
		t.Fatal("expected lock on file-b to succeed independently of file-a")
	}
	releaseB()
}
