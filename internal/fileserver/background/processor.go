// Package background runs File Server's two long-running passes (spec.md
// §4.6): full-text extraction and preview generation. Each pass ticks over
// every tenant's fs_<code> schema, picks one eligible file_reference,
// processes it, and backs off exponentially on failure. The two passes
// never touch the same file_ref at once; internal/fileserver/lockset
// enforces that.
package background

import (
	"context"
	"time"

	"go.uber.org/zap"

	domfr "github.com/doka-one/doka/internal/fileserver/domain/filereference"
	"github.com/doka-one/doka/internal/fileserver/repo/tenantschema"
	"github.com/doka-one/doka/pkg/tenant"
)

// tickInterval is how often each pass looks for new work.
const tickInterval = 5 * time.Second

// minBackoff/maxBackoff bound the exponential backoff applied to a
// file_ref that keeps failing a pass, so a persistently broken file
// doesn't get hammered every tick forever.
const (
	minBackoff = 5 * time.Second
	maxBackoff = 10 * time.Minute
)

// Locker is the subset of lockset.Set the processor needs: mutual
// exclusion between the two passes on one file_ref.
type Locker interface {
	TryLock(key string) (release func(), ok bool)
}

// Pass is one background pass's unit of work: given a tenant's schema and
// customer_code, try to advance exactly one eligible file_reference and
// report whether it found anything to do.
type Pass interface {
	Name() string
	PickNext(ctx context.Context, schema string) (*domfr.FileReference, error)
	Process(ctx context.Context, customerCode, schema string, fr *domfr.FileReference) error
}

// Processor drives an arbitrary set of Passes over every known tenant on a
// fixed tick, serialized per file_ref via locker.
type Processor struct {
	logger   *zap.Logger
	tenants  tenantschema.Repository
	locker   Locker
	passes   []Pass
	backoffs map[string]*backoffState
}

type backoffState struct {
	next time.Time
	wait time.Duration
}

func NewProcessor(logger *zap.Logger, tenants tenantschema.Repository, locker Locker, passes ...Pass) *Processor {
	return &Processor{logger: logger, tenants: tenants, locker: locker, passes: passes, backoffs: make(map[string]*backoffState)}
}

// Run blocks until ctx is cancelled, ticking every pass over every tenant
// schema on tickInterval.
func (p *Processor) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Processor) tick(ctx context.Context) {
	codes, err := p.tenants.ListCustomerCodes(ctx)
	if err != nil {
		p.logger.Warn("background: list tenant schemas failed", zap.Error(err))
		return
	}

	for _, code := range codes {
		schema, err := tenant.FileSchemaName(code)
		if err != nil {
			continue
		}
		for _, pass := range p.passes {
			p.runPass(ctx, pass, code, schema)
		}
	}
}

func (p *Processor) runPass(ctx context.Context, pass Pass, customerCode, schema string) {
	fr, err := pass.PickNext(ctx, schema)
	if err != nil {
		return
	}

	lockKey := pass.Name() + ":" + fr.FileRef
	if now, ok := p.backoffs[lockKey]; ok && time.Now().Before(now.next) {
		return
	}

	release, ok := p.locker.TryLock(fr.FileRef)
	if !ok {
		return
	}
	defer release()

	if err := pass.Process(ctx, customerCode, schema, fr); err != nil {
		p.logger.Warn("background pass failed, backing off",
			zap.String("pass", pass.Name()), zap.String("file_ref", fr.FileRef), zap.Error(err))
		p.recordFailure(lockKey)
		return
	}
	delete(p.backoffs, lockKey)
}

func (p *Processor) recordFailure(key string) {
	state, ok := p.backoffs[key]
	if !ok {
		state = &backoffState{wait: minBackoff}
	} else {
		state.wait *= 2
		if state.wait > maxBackoff {
			state.wait = maxBackoff
		}
	}
	state.next = time.Now().Add(state.wait)
	p.backoffs[key] = state
}
