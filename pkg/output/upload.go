package output

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultUploadTimeout bounds a single PutObject call
const DefaultUploadTimeout = 30 * time.Second

// UploadConfig holds the S3 connection settings
type UploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string // Optional; empty uses the AWS endpoint for Region
	Region    string
	Bucket    string
	Prefix    string // Key prefix, e.g. "renders/"
	Timeout   time.Duration
}

// Uploader pushes rendered images to an S3-compatible bucket
type Uploader struct {
	client s3iface.S3API
	config UploadConfig
	logger core.Logger
}

// NewUploader creates an uploader with a static-credential S3 session
func NewUploader(config UploadConfig, logger core.Logger) (*Uploader, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("upload bucket not configured")
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.Endpoint != "" {
		s3Config.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return newUploaderWithClient(s3.New(sess), config, logger), nil
}

func newUploaderWithClient(client s3iface.S3API, config UploadConfig, logger core.Logger) *Uploader {
	if config.Timeout <= 0 {
		config.Timeout = DefaultUploadTimeout
	}
	return &Uploader{client: client, config: config, logger: logger}
}

// Key returns the object key used for name
func (u *Uploader) Key(name string) string {
	return path.Join(u.config.Prefix, name)
}

// Upload stores a PNG under the configured prefix and returns its key
func (u *Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.config.Timeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.config.Bucket, size)
	}
	return key, nil
}
