// Package archive guarda versões do payload dos contratos num bucket S3.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Bucket          string
	Region          string
	Endpoint        string // MinIO / compatível; vazio usa AWS
	AccessKeyID     string
	SecretAccessKey string
}

type S3Archive struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

func NewS3Archive(cfg Config) *S3Archive {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Archive{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		now:    time.Now,
	}
}

// Key monta contracts/{id}/{timestamp}-{uuid}.json.
func Key(contractID uint, at time.Time, id uuid.UUID) string {
	return fmt.Sprintf("contracts/%d/%s-%s.json", contractID, at.UTC().Format("20060102T150405Z"), id)
}

// PutSnapshot grava o payload e devolve a chave do objeto.
func (a *S3Archive) PutSnapshot(ctx context.Context, contractID uint, payload []byte) (string, error) {
	key := Key(contractID, a.now(), uuid.New())

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put snapshot %s: %w", key, err)
	}

	return key, nil
}
