// Package chunking splits an upload's plaintext into fixed-size parts and
// encrypts them with bounded parallelism (spec.md §4.6 step 5), the "CPU-bound
// blocking pool" back-pressure spec.md §5 describes — an unbuffered job
// channel plus a fixed worker count, not one goroutine per part.
package chunking

import (
	"context"
	"fmt"
	"sync"

	"github.com/doka-one/doka/pkg/security/crypto"
)

// PartSize is 1 MiB minus the AEAD overhead crypto.Seal adds, so every
// encrypted part still fits the 1 MiB storage budget spec.md §4.6 assumes.
const PartSize = 1024*1024 - 40

// DefaultWorkers bounds how many parts are encrypted concurrently during one
// upload.
const DefaultWorkers = 4

// Split divides plaintext into PartSize chunks; the last chunk may be
// shorter. An empty plaintext yields a single empty chunk so a zero-byte
// upload still produces exactly one part.
func Split(plaintext []byte) [][]byte {
	if len(plaintext) == 0 {
		return [][]byte{{}}
	}
	var chunks [][]byte
	for offset := 0; offset < len(plaintext); offset += PartSize {
		end := offset + PartSize
		if end > len(plaintext) {
			end = len(plaintext)
		}
		chunks = append(chunks, plaintext[offset:end])
	}
	return chunks
}

// EncryptedPart is one chunk's ciphertext, tagged with its 0-based position
// so results can be reassembled after concurrent encryption.
type EncryptedPart struct {
	PartNumber int
	Ciphertext []byte
}

// EncryptParallel encrypts every chunk with keyString using a worker pool
// bounded to workers goroutines, returning results ordered by PartNumber. It
// stops dispatching new work and returns the first error encountered once
// the context is cancelled or a worker fails.
func EncryptParallel(ctx context.Context, chunks [][]byte, keyString string, workers int) ([]EncryptedPart, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	parentCtx := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		partNumber int
		chunk      []byte
	}
	jobs := make(chan job)
	results := make([]EncryptedPart, len(chunks))

	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				ciphertext, err := crypto.Seal(j.chunk, keyString)
				if err != nil {
					select {
					case errCh <- fmt.Errorf("chunking: encrypt part %d: %w", j.partNumber, err):
					default:
					}
					cancel()
					return
				}
				results[j.partNumber] = EncryptedPart{PartNumber: j.partNumber, Ciphertext: ciphertext}
			}
		}()
	}

dispatch:
	for i, chunk := range chunks {
		select {
		case jobs <- job{partNumber: i, chunk: chunk}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	if parentCtx.Err() != nil {
		return nil, parentCtx.Err()
	}
	return results, nil
}
