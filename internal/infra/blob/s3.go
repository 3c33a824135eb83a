package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/samirchaudhary/portfolio-api/internal/config"
)

// Uploaded describes a stored object: the public URL persisted on records
// and the key used to delete the object later.
type Uploaded struct {
	URL string
	Key string
}

// Store is the asset-store surface the services depend on.
type Store interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*Uploaded, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL resolves a previously issued public URL back to its object key.
	KeyFromURL(rawURL string) (string, bool)
}

type S3Store struct {
	client     *s3.Client
	uploader   *manager.Uploader
	bucket     string
	publicBase string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(cfg.Storage.Endpoint)
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	s3Opts := func(o *s3.Options) {
		if endpoint != "" {
			if u, uerr := url.Parse(endpoint); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.Storage.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	publicBase := strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = endpoint + "/" + cfg.Storage.Bucket
	}

	return &S3Store{
		client:     client,
		uploader:   manager.NewUploader(client),
		bucket:     cfg.Storage.Bucket,
		publicBase: publicBase,
	}, nil
}

// Upload stores a byte buffer under the given folder prefix. Keys are
// content-addressed so re-uploading identical bytes lands on the same object.
func (s *S3Store) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*Uploaded, error) {
	sum := sha256.Sum256(data)
	ext := strings.ToLower(path.Ext(filename))
	key := folder + "/" + hex.EncodeToString(sum[:]) + ext

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"name": filename,
		},
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return nil, err
	}

	return &Uploaded{
		URL: s.publicBase + "/" + key,
		Key: key,
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// KeyFromURL extracts the object key from a URL this store issued.
// Foreign URLs report ok=false.
func (s *S3Store) KeyFromURL(rawURL string) (string, bool) {
	if s.publicBase == "" || !strings.HasPrefix(rawURL, s.publicBase+"/") {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, s.publicBase+"/")
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	if key == "" {
		return "", false
	}
	return key, true
}
