package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Provider stores objects in an S3 or S3-compatible bucket.
type S3Provider struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
	bucket     string
	region     string
	endpoint   string
}

type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Provider creates an S3 storage provider.
func NewS3Provider(opts S3Options) (*S3Provider, error) {
	config := &aws.Config{
		Region: aws.String(opts.Region),
	}

	if opts.AccessKey != "" && opts.SecretKey != "" {
		config.Credentials = credentials.NewStaticCredentials(opts.AccessKey, opts.SecretKey, "")
	}

	// Custom endpoint covers S3-compatible services.
	if opts.Endpoint != "" {
		config.Endpoint = aws.String(opts.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &S3Provider{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
		bucket:     opts.Bucket,
		region:     opts.Region,
		endpoint:   opts.Endpoint,
	}, nil
}

func (sp *S3Provider) Name() string { return "s3" }

func (sp *S3Provider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	input := &s3manager.UploadInput{
		Bucket: aws.String(sp.bucket),
		Key:    aws.String(key),
		Body:   reader,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := sp.uploader.UploadWithContext(ctx, input); err != nil {
		return NewStorageError("s3", "UPLOAD_FAILED", err.Error(), key)
	}
	return nil
}

func (sp *S3Provider) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := sp.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(sp.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, NewStorageError("s3", "DOWNLOAD_FAILED", err.Error(), key)
	}
	return out.Body, nil
}

func (sp *S3Provider) Delete(ctx context.Context, key string) error {
	_, err := sp.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(sp.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return NewStorageError("s3", "DELETE_FAILED", err.Error(), key)
	}
	return nil
}

func (sp *S3Provider) URL(key string) string {
	if sp.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", sp.endpoint, sp.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", sp.bucket, sp.region, key)
}
