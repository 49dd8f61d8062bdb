package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	domfp "github.com/doka-one/doka/internal/fileserver/domain/filepart"
)

type fakeRepo struct {
	rows   map[int]*domfp.FilePart
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int]*domfp.FilePart)}
}

func (r *fakeRepo) Insert(ctx context.Context, schema string, fileReferenceID int64, partNumber int, partData *string) (int64, error) {
	r.nextID++
	r.rows[partNumber] = &domfp.FilePart{ID: r.nextID, FileReferenceID: fileReferenceID, PartNumber: partNumber, IsEncrypted: true, PartData: partData}
	return r.nextID, nil
}

func (r *fakeRepo) Get(ctx context.Context, schema string, fileReferenceID int64, partNumber int) (*domfp.FilePart, error) {
	fp, ok := r.rows[partNumber]
	if !ok {
		return nil, domfp.ErrNotFound
	}
	return fp, nil
}

func (r *fakeRepo) Count(ctx context.Context, schema string, fileReferenceID int64) (int, error) {
	return len(r.rows), nil
}

// fakeObjectStorage implements objs3.S3ObjectStorage backed by an in-memory
// map. Only UploadContent/GetBinaryData are exercised by the partstore; the
// rest panic if called since nothing here should reach them.
type fakeObjectStorage struct {
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) UploadContent(ctx context.Context, objectKey string, content []byte) error {
	cp := make([]byte, len(content))
	copy(cp, content)
	f.objects[objectKey] = cp
	return nil
}

func (f *fakeObjectStorage) UploadContentWithVisibility(ctx context.Context, objectKey string, content []byte, isPublic bool) error {
	return f.UploadContent(ctx, objectKey, content)
}

func (f *fakeObjectStorage) UploadContentFromMulipart(ctx context.Context, objectKey string, file multipart.File) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) UploadContentFromMulipartWithVisibility(ctx context.Context, objectKey string, file multipart.File, isPublic bool) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return true, nil
}

func (f *fakeObjectStorage) GetDownloadablePresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) DeleteByKeys(ctx context.Context, key []string) error {
	for _, k := range key {
		delete(f.objects, k)
	}
	return nil
}

func (f *fakeObjectStorage) Cut(ctx context.Context, sourceObjectKey string, destinationObjectKey string) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) CutWithVisibility(ctx context.Context, sourceObjectKey string, destinationObjectKey string, isPublic bool) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) Copy(ctx context.Context, sourceObjectKey string, destinationObjectKey string) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) CopyWithVisibility(ctx context.Context, sourceObjectKey string, destinationObjectKey string, isPublic bool) error {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) GetBinaryData(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	content, ok := f.objects[objectKey]
	if !ok {
		return nil, fmt.Errorf("fake s3: object %q not found", objectKey)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeObjectStorage) DownloadToLocalfile(ctx context.Context, objectKey string, filePath string) (string, error) {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) ListAllObjects(ctx context.Context) (*s3.ListObjectsOutput, error) {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) FindMatchingObjectKey(s3Objects *s3.ListObjectsOutput, partialKey string) string {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) IsPublicBucket() bool {
	return false
}

func (f *fakeObjectStorage) GeneratePresignedUploadURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	panic("not used by partstore/s3 tests")
}

func (f *fakeObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeObjectStorage) GetObjectSize(ctx context.Context, key string) (int64, error) {
	return int64(len(f.objects[key])), nil
}

func TestPutThenGetRoundTripsCiphertextThroughS3(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeObjectStorage()
	store := New(repo, storage)

	ciphertext := []byte{0x01, 0x02, 0xff, 0x00, 0x10}
	if err := store.Put(context.Background(), "fs_deadbeef", 42, 0, ciphertext); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(context.Background(), "fs_deadbeef", 42, 0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, ciphertext) {
		t.Fatalf("round trip mismatch: got %v want %v", got, ciphertext)
	}
}

func TestPutInsertsMetadataOnlyRow(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeObjectStorage()
	store := New(repo, storage)

	if err := store.Put(context.Background(), "fs_deadbeef", 42, 0, []byte("ciphertext")); err != nil {
		t.Fatalf("put: %v", err)
	}

	fp, err := repo.Get(context.Background(), "fs_deadbeef", 42, 0)
	if err != nil {
		t.Fatalf("get metadata row: %v", err)
	}
	if fp.PartData != nil {
		t.Fatalf("expected part_data to stay NULL for the s3 backend, got %v", *fp.PartData)
	}
}

func TestCountReflectsStoredParts(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeObjectStorage()
	store := New(repo, storage)

	for i := 0; i < 3; i++ {
		if err := store.Put(context.Background(), "fs_deadbeef", 42, i, []byte{byte(i)}); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	count, err := store.Count(context.Background(), "fs_deadbeef", 42)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}
