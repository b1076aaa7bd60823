package objectstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"pet-events/internal/domain/images"
	"pet-events/internal/errdef"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	buckets map[string]bool
	puts    map[string][]byte
	types   map[string]string
}

func newFake() *fakeObjects {
	return &fakeObjects{buckets: map[string]bool{}, puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return f.buckets[bucket], nil
}

func (f *fakeObjects) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	f.buckets[bucket] = true
	return nil
}

func (f *fakeObjects) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	b, _ := io.ReadAll(r)
	f.puts[bucket+"/"+key] = b
	f.types[bucket+"/"+key] = opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: key, Size: size}, nil
}

func (f *fakeObjects) GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return nil, errors.New("not used")
}

func TestImagesRepo_CreateAndBucket(t *testing.T) {
	fake := newFake()
	repo := &ImagesRepo{client: fake, bucket: "pictures"}
	ctx := context.Background()

	require.NoError(t, repo.EnsureBucket(ctx))
	assert.True(t, fake.buckets["pictures"])

	img, err := repo.Create(ctx, images.Image{ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	require.NotEmpty(t, img.ID)

	key := "pictures/images/" + img.ID
	assert.Equal(t, []byte("png"), fake.puts[key])
	assert.Equal(t, "image/png", fake.types[key])
}

func TestImagesRepo_GetByID_InvalidID(t *testing.T) {
	repo := &ImagesRepo{client: newFake(), bucket: "pictures"}

	_, err := repo.GetByID(context.Background(), "../../etc/passwd")
	assert.True(t, errdef.IsNotFound(err))
}

func TestTranslate(t *testing.T) {
	repo := &ImagesRepo{bucket: "pictures"}

	err := repo.translate("x", minio.ErrorResponse{Code: "NoSuchKey"})
	assert.True(t, errdef.IsNotFound(err))

	err = repo.translate("x", errors.New("boom"))
	assert.False(t, errdef.IsNotFound(err))
}
