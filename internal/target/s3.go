package target

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"photosort/internal/config"
	"photosort/internal/photosort"
)

// Object metadata keys carrying the source file's stat info.
const (
	metaModTime = "photosort-mtime"
	metaMode    = "photosort-mode"
)

// S3API is the subset of the S3 client used by S3Target.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Uploader is the subset of manager.Uploader used by S3Target.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Target writes sorted files as objects under <prefix>/<groupKey>/<filename>.
// S3 has no directories, so EnsureDir is a no-op. Modification time and
// permission bits are kept as object metadata.
type S3Target struct {
	client   S3API
	uploader Uploader
	bucket   string
	prefix   string
}

// NewS3Target creates a target from explicit clients.
func NewS3Target(client S3API, uploader Uploader, bucket, prefix string) *S3Target {
	return &S3Target{client: client, uploader: uploader, bucket: bucket, prefix: prefix}
}

// NewS3TargetFromConfig loads AWS configuration and builds the S3 clients.
// Static credentials are used when both keys are set; otherwise the default
// credential chain applies.
func NewS3TargetFromConfig(ctx context.Context, cfg config.TargetConfig) (*S3Target, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 target requires s3_bucket to be set")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Target(client, manager.NewUploader(client), cfg.S3Bucket, cfg.S3Prefix), nil
}

// key converts a relative target path to an object key.
func (t *S3Target) key(rel string) string {
	return path.Join(t.prefix, filepath.ToSlash(rel))
}

func (t *S3Target) EnsureDir(string) error { return nil }

func (t *S3Target) Exists(rel string) (bool, error) {
	_, err := t.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(t.key(rel)),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("head %s: %w", t.Location(rel), err)
}

// Put uploads r with If-None-Match so an object created concurrently is not
// overwritten.
func (t *S3Target) Put(rel string, r io.Reader, info fs.FileInfo) error {
	_, err := t.uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(t.bucket),
		Key:         aws.String(t.key(rel)),
		Body:        r,
		IfNoneMatch: aws.String("*"),
		Metadata: map[string]string{
			metaModTime: info.ModTime().UTC().Format(time.RFC3339Nano),
			metaMode:    strconv.FormatUint(uint64(info.Mode().Perm()), 8),
		},
	})
	if err != nil {
		if hasErrorCode(err, "PreconditionFailed") {
			return fmt.Errorf("%s: %w", t.Location(rel), photosort.ErrTargetExists)
		}
		return fmt.Errorf("uploading %s: %w", t.Location(rel), err)
	}
	return nil
}

func (t *S3Target) Remove(rel string) error {
	_, err := t.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(t.key(rel)),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", t.Location(rel), err)
	}
	return nil
}

func (t *S3Target) Location(rel string) string {
	return "s3://" + t.bucket + "/" + t.key(rel)
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	return hasErrorCode(err, "NotFound")
}

func hasErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == code
}

// Compile-time check that S3Target implements photosort.Target
var _ photosort.Target = (*S3Target)(nil)
