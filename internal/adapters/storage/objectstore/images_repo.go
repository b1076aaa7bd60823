// Package objectstore guarda imágenes en un bucket S3 compatible (MinIO).
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"pet-events/internal/domain/images"
	"pet-events/internal/errdef"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// objectAPI es el subconjunto de *minio.Client que usamos.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

type ImagesRepo struct {
	client objectAPI
	bucket string
}

func NewClient(cfg Config) (*minio.Client, error) {
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating MinIO client: %v", err)
	}
	return c, nil
}

func NewImagesRepo(client *minio.Client, bucket string) *ImagesRepo {
	return &ImagesRepo{client: client, bucket: bucket}
}

// EnsureBucket crea el bucket si no existe.
func (r *ImagesRepo) EnsureBucket(ctx context.Context) error {
	ok, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket %q: %w", r.bucket, err)
	}
	if ok {
		return nil
	}
	if err := r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("error creating bucket %q: %w", r.bucket, err)
	}
	return nil
}

func objectKey(id string) string {
	return "images/" + id
}

func (r *ImagesRepo) Create(ctx context.Context, img images.Image) (images.Image, error) {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}

	_, err := r.client.PutObject(ctx, r.bucket, objectKey(img.ID), bytes.NewReader(img.Data), img.Size(), minio.PutObjectOptions{
		ContentType: img.ContentType,
	})
	if err != nil {
		return images.Image{}, fmt.Errorf("error uploading image %q to bucket %q: %w", img.ID, r.bucket, err)
	}
	return img, nil
}

func (r *ImagesRepo) GetByID(ctx context.Context, id string) (images.Image, error) {
	if _, err := uuid.Parse(id); err != nil {
		return images.Image{}, errdef.NewNotFound("image %q not found", id)
	}

	obj, err := r.client.GetObject(ctx, r.bucket, objectKey(id), minio.GetObjectOptions{})
	if err != nil {
		return images.Image{}, r.translate(id, err)
	}
	defer obj.Close()

	// GetObject es lazy: el 404 aparece recién en Stat/Read.
	info, err := obj.Stat()
	if err != nil {
		return images.Image{}, r.translate(id, err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return images.Image{}, r.translate(id, err)
	}

	return images.Image{
		ID:          id,
		ContentType: info.ContentType,
		Data:        data,
		CreatedAt:   info.LastModified,
	}, nil
}

func (r *ImagesRepo) translate(id string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return errdef.NewNotFound("image %q not found", id)
	}
	return fmt.Errorf("error downloading image %q from bucket %q: %w", id, r.bucket, err)
}
