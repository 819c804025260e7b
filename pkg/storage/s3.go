package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"letteron-backend/pkg/config"
)

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// S3Store implements ObjectStore on top of AWS S3.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	prefix  string
	expiry  time.Duration
	now     func() time.Time
}

func NewS3Store(client *s3.Client, cfg *config.Config) *S3Store {
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3BucketName,
		prefix:  cfg.S3ImagePrefix,
		expiry:  cfg.PresignExpiry,
		now:     time.Now,
	}
}

// objectKey derives the deterministic key for a letter image:
// <prefix><letterID>/<timestamp>_<sanitized filename>.
func (s *S3Store) objectKey(letterID, filename string) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s%s/%s_%s", s.prefix, letterID, timestamp, sanitizeFilename(filename))
}

// sanitizeFilename strips everything outside [a-zA-Z0-9._-] and collapses
// the resulting underscore runs.
func sanitizeFilename(filename string) string {
	safe := unsafeChars.ReplaceAllString(filename, "_")
	return underscoreRuns.ReplaceAllString(safe, "_")
}

func (s *S3Store) UploadLetterImage(ctx context.Context, content []byte, letterID, filename, contentType string) (*UploadResult, error) {
	key := s.objectKey(letterID, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"letter_id":         letterID,
			"original_filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	url, err := s.PresignURL(ctx, key, s.expiry)
	if err != nil {
		return nil, err
	}

	return &UploadResult{Key: key, URL: url}, nil
}

func (s *S3Store) PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *S3Store) DeleteLetterImages(ctx context.Context, letterID string) (int, error) {
	prefix := s.prefix + letterID + "/"

	listed, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list objects for letter %s: %w", letterID, err)
	}

	if len(listed.Contents) == 0 {
		return 0, nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(listed.Contents))
	for _, obj := range listed.Contents {
		objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
	}

	_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete images for letter %s: %w", letterID, err)
	}

	log.Printf("[Storage] Deleted %d images for letter %s", len(objects), letterID)
	return len(objects), nil
}
