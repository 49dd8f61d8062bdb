package background

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
)

type fakeTenantRepo struct {
	codes []string
}

func (r *fakeTenantRepo) ListCustomerCodes(ctx context.Context) ([]string, error) {
	return r.codes, nil
}

type fakeLocker struct {
	held map[string]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) TryLock(key string) (func(), bool) {
	if l.held[key] {
		return nil, false
	}
	l.held[key] = true
	return func() { delete(l.held, key) }, true
}

type fakePass struct {
	name         string
	next         *domfr.FileReference
	processErr   error
	processCalls int
}

func (p *fakePass) Name() string { return p.name }

func (p *fakePass) PickNext(ctx context.Context, schema string) (*domfr.FileReference, error) {
	if p.next == nil {
		return nil, domfr.ErrNotFound
	}
	return p.next, nil
}

func (p *fakePass) Process(ctx context.Context, customerCode, schema string, fr *domfr.FileReference) error {
	p.processCalls++
	return p.processErr
}

func TestTickProcessesEligibleFileReferenceOncePerPass(t *testing.T) {
	tenants := &fakeTenantRepo{codes: []string{"deadbeef"}}
	locker := newFakeLocker()
	pass := &fakePass{name: "fulltext", next: &domfr.FileReference{FileRef: "file-1"}}

	p := NewProcessor(zap.NewNop(), tenants, locker, pass)
	p.tick(context.Background())

	if pass.processCalls != 1 {
		t.Fatalf("expected Process to run once, got %d", pass.processCalls)
	}
}

func TestTickSkipsInvalidCustomerCode(t *testing.T) {
	tenants := &fakeTenantRepo{codes: []string{"not-hex"}}
	locker := newFakeLocker()
	pass := &fakePass{name: "fulltext", next: &domfr.FileReference{FileRef: "file-1"}}

	p := NewProcessor(zap.NewNop(), tenants, locker, pass)
	p.tick(context.Background())

	if pass.processCalls != 0 {
		t.Fatalf("expected Process not to run for an invalid customer_code, got %d calls", pass.processCalls)
	}
}

func TestRunPassBacksOffAfterFailureAndStopsRetryingImmediately(t *testing.T) {
	tenants := &fakeTenantRepo{codes: []string{"deadbeef"}}
	locker := newFakeLocker()
	pass := &fakePass{name: "fulltext", next: &domfr.FileReference{FileRef: "file-1"}, processErr: fmt.Errorf("boom")}

	p := NewProcessor(zap.NewNop(), tenants, locker, pass)
	p.tick(context.Background())
	if pass.processCalls != 1 {
		t.Fatalf("expected first tick to attempt Process once, got %d", pass.processCalls)
	}

	p.tick(context.Background())
	if pass.processCalls != 1 {
		t.Fatalf("expected second tick to be suppressed by backoff, got %d calls", pass.processCalls)
	}
}

func TestRunPassClearsBackoffAfterSuccess(t *testing.T) {
	tenants := &fakeTenantRepo{codes: []string{"deadbeef"}}
	locker := newFakeLocker()
	pass := &fakePass{name: "fulltext", next: &domfr.FileReference{FileRef: "file-1"}, processErr: fmt.Errorf("boom")}

	p := NewProcessor(zap.NewNop(), tenants, locker, pass)
	p.tick(context.Background())

	lockKey := pass.Name() + ":" + pass.next.FileRef
	if _, ok := p.backoffs[lockKey]; !ok {
		t.Fatal("expected a backoff entry to be recorded after failure")
	}

	pass.processErr = nil
	p.backoffs[lockKey].next = p.backoffs[lockKey].next.Add(-2 * maxBackoff)
	p.tick(context.Background())

	if pass.processCalls != 2 {
		t.Fatalf("expected Process to run again once the backoff window has passed, got %d", pass.processCalls)
	}
	if _, ok := p.backoffs[lockKey]; ok {
		t.Fatal("expected backoff entry to be cleared after a successful Process")
	}
}

func TestRunPassSkipsWhenLockAlreadyHeld(t *testing.T) {
	tenants := &fakeTenantRepo{codes: []string{"deadbeef"}}
	locker := newFakeLocker()
	locker.held["file-1"] = true
	pass := &fakePass{name: "fulltext", next: &domfr.FileReference{FileRef: "file-1"}}

	p := NewProcessor(zap.NewNop(), tenants, locker, pass)
	p.tick(context.Background())

	if pass.processCalls != 0 {
		t.Fatalf("expected Process not to run while the lock is held, got %d calls", pass.processCalls)
	}
}
