package customerkey

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	dom "github.com/doka-one/doka/internal/keymanager/domain/customerkey"
	"github.com/doka-one/doka/pkg/security/crypto"
)

type fakeRepo struct {
	rows map[string]*dom.CustomerKey
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*dom.CustomerKey)}
}

func (r *fakeRepo) Create(ctx context.Context, k *dom.CustomerKey) error {
	if _, ok := r.rows[k.CustomerCode]; ok {
		return dom.ErrAlreadyExists
	}
	r.rows[k.CustomerCode] = k
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, customerCode string) (*dom.CustomerKey, error) {
	k, ok := r.rows[customerCode]
	if !ok {
		return nil, dom.ErrNotFound
	}
	return k, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]*dom.CustomerKey, error) {
	var out []*dom.CustomerKey
	for _, k := range r.rows {
		out = append(out, k)
	}
	return out, nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{values: make(map[string]string)} }

func (c *fakeCache) Fetch(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", errNotCached
	}
	return v, nil
}

func (c *fakeCache) Save(key, value string, expires time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	delete(c.values, key)
	return nil
}

func (c *fakeCache) Contains(key string) bool {
	_, ok := c.values[key]
	return ok
}

type cacheMissErr struct{}

func (cacheMissErr) Error() string { return "not cached" }

var errNotCached error = cacheMissErr{}

func newCEKKeyString(t *testing.T) func() string {
	t.Helper()
	keyString, err := crypto.GenerateKeyString()
	if err != nil {
		t.Fatalf("generate cek key string: %v", err)
	}
	return func() string { return keyString }
}

func TestAddKeyThenGetKey(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeRepo()
	c := newFakeCache()
	cekFn := newCEKKeyString(t)

	addUC := NewAddKeyUseCase(logger, repo, cekFn, c)
	getUC := NewGetKeyUseCase(logger, repo, c)

	if err := addUC.Execute(context.Background(), "ab12cd34"); err != nil {
		t.Fatalf("add key failed: %v", err)
	}

	ciphered, err := getUC.Execute(context.Background(), "ab12cd34")
	if err != nil {
		t.Fatalf("get key failed: %v", err)
	}
	if ciphered == "" {
		t.Fatal("expected a non-empty wrapped key")
	}

	plaintext, err := crypto.OpenFromString(ciphered, cekFn())
	if err != nil {
		t.Fatalf("unwrap key failed: %v", err)
	}
	if len(plaintext) != crypto.KeyStringEncodedLength {
		t.Fatalf("unwrapped key length = %d, want %d", len(plaintext), crypto.KeyStringEncodedLength)
	}
}

func TestAddKeyRejectsDuplicateCustomerCode(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeRepo()
	c := newFakeCache()
	cekFn := newCEKKeyString(t)

	addUC := NewAddKeyUseCase(logger, repo, cekFn, c)

	if err := addUC.Execute(context.Background(), "dup0001"); err != nil {
		t.Fatalf("first add key failed: %v", err)
	}
	if err := addUC.Execute(context.Background(), "dup0001"); err == nil {
		t.Fatal("expected second add_key for the same customer_code to fail")
	}
}

func TestGetKeyUnknownCustomerFails(t *testing.T) {
	logger := zap.NewNop()
	repo := newFakeRepo()
	c := newFakeCache()
	getUC := NewGetKeyUseCase(logger, repo, c)

	if _, err := getUC.Execute(context.Background(), "missing"); err == nil {
		t.Fatal("expected get_key on an unknown customer to fail")
	}
}
