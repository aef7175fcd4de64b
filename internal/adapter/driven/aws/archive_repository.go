package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/aws-cost-report/internal/domain/repository"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ArchiveRepositoryImpl guarda relatórios renderizados em um bucket S3.
type ArchiveRepositoryImpl struct {
	clients *ClientFactory
	bucket  string
	s3      s3API
}

// NewArchiveRepository cria um ArchiveRepository para o bucket informado.
func NewArchiveRepository(clients *ClientFactory, bucket string) repository.ArchiveRepository {
	return &ArchiveRepositoryImpl{clients: clients, bucket: bucket}
}

func (r *ArchiveRepositoryImpl) s3Client(ctx context.Context) (s3API, error) {
	if r.s3 != nil {
		return r.s3, nil
	}
	// Região vazia: usa a região da config padrão (a da própria Lambda)
	client, err := r.clients.getServiceClient(ctx, "", serviceS3)
	if err != nil {
		return nil, err
	}
	return client.(*s3.Client), nil
}

// Store grava body em s3://bucket/key e retorna a localização do objeto.
func (r *ArchiveRepositoryImpl) Store(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	client, err := r.s3Client(ctx)
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading report to bucket %s: %w", r.bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
}
