// Package snapshot exports the full directory as a JSON document to
// S3-compatible object storage.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	sc "github.com/dmitrijs2005/userdirectory/internal/server/config"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// Lister supplies the users to export.
type Lister interface {
	List(ctx context.Context) ([]models.User, error)
}

// Document is the exported payload.
type Document struct {
	TakenAt time.Time     `json:"takenAt"`
	Count   int           `json:"count"`
	Users   []models.User `json:"users"`
}

type Exporter struct {
	lister Lister
	config *sc.Config
	logger logging.Logger
	now    func() time.Time
}

func NewExporter(l Lister, cfg *sc.Config, log logging.Logger) *Exporter {
	return &Exporter{
		lister: l,
		config: cfg,
		logger: log.With("module", "snapshot"),
		now:    time.Now,
	}
}

// StorageKey returns a fresh object key under snapshots/YYYY/MM/DD/.
func StorageKey(t time.Time) string {
	return fmt.Sprintf("snapshots/%04d/%02d/%02d/%v.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

func (e *Exporter) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(e.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.config.S3RootUser,
			e.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(e.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads the current directory and returns the object key.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	users, err := e.lister.List(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	taken := e.now().UTC()
	data, err := json.Marshal(Document{TakenAt: taken, Count: len(users), Users: users})
	if err != nil {
		return "", fmt.Errorf("error encoding snapshot: %w", err)
	}

	client, err := e.getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error configuring s3 client: %w", err)
	}

	bucket := e.config.S3Bucket
	key := StorageKey(taken)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading snapshot: %w", err)
	}

	e.logger.Info(ctx, "snapshot uploaded", "bucket", bucket, "key", key, "count", len(users))
	return key, nil
}
