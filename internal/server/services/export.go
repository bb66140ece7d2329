package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/diary/internal/common"
	sc "github.com/dmitrijs2005/diary/internal/server/config"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// exportBatchSize is how many entries are read per query while exporting.
const exportBatchSize = 100

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ExportResult points at an uploaded export snapshot.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type exportDocument struct {
	ExportedAt time.Time       `json:"exported_at"`
	Entries    []*models.Entry `json:"entries"`
}

// ExportService writes a JSON snapshot of a user's entries to object storage.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewExportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		now:         time.Now,
	}
}

// ExportKey returns the object key for a snapshot of userID's entries taken at t.
func ExportKey(userID int64, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("users/%d/exports/%04d/%02d/%02d/%v.json", userID, t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			// path-style for MinIO and similar stores
			o.UsePathStyle = true
		}
	}), nil
}

func (s *ExportService) collect(ctx context.Context, userID int64) ([]*models.Entry, error) {
	repo := s.repomanager.Entries(s.db)
	all := make([]*models.Entry, 0)
	for offset := 0; ; offset += exportBatchSize {
		batch, err := repo.List(ctx, userID, exportBatchSize, offset)
		if err != nil {
			return nil, fmt.Errorf("error listing entries: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < exportBatchSize {
			return all, nil
		}
	}
}

// Export uploads every entry of userID, newest first, and returns a
// presigned link to the uploaded object.
func (s *ExportService) Export(ctx context.Context, userID int64) (*ExportResult, error) {
	if !s.config.ExportEnabled() {
		return nil, common.ErrExportDisabled
	}

	entries, err := s.collect(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	body, err := json.Marshal(exportDocument{ExportedAt: now, Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportKey(userID, now)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	validity := s.config.ExportLinkValidity
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &ExportResult{Key: key, URL: req.URL, ExpiresAt: now.Add(validity)}, nil
}
