package aws

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestArchiveRepository_Store(t *testing.T) {
	fake := &fakeS3{}
	repo := &ArchiveRepositoryImpl{bucket: "reports-bucket", s3: fake}

	location, err := repo.Store(context.Background(), "cost-reports/123/2025-03-15.html", []byte("<html/>"), "text/html; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "s3://reports-bucket/cost-reports/123/2025-03-15.html", location)

	assert.Equal(t, "reports-bucket", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "cost-reports/123/2025-03-15.html", aws.ToString(fake.input.Key))
	assert.Equal(t, "text/html; charset=utf-8", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("<html/>"), fake.body)
}

func TestArchiveRepository_Store_Error(t *testing.T) {
	repo := &ArchiveRepositoryImpl{bucket: "reports-bucket", s3: &fakeS3{err: errors.New("NoSuchBucket")}}

	_, err := repo.Store(context.Background(), "k", nil, "text/html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reports-bucket")
}
