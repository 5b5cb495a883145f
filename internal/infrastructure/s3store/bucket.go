// Package s3store persistiert Tagesarchive und Kostentabellen als CSV-Dateien
// in einem S3-kompatiblen Bucket (AWS S3, MinIO etc.). Die CSV-Spaltennamen
// sind dauerhafte Verträge: bestehende Dateien müssen über Releases hinweg
// lesbar bleiben.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/avelio/profitab-api/internal/domain"
	"github.com/avelio/profitab-api/pkg/config"
)

// objectStore die interne Schnittstelle zum Objektspeicher; in Tests durch
// eine In-Memory-Variante ersetzt.
type objectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// Bucket Objektspeicher-Zugriff über aws-sdk-go-v2, kompatibel mit AWS S3 und
// S3-kompatiblen Diensten über einen eigenen Endpoint.
type Bucket struct {
	client *s3.Client
	bucket string
}

var _ objectStore = (*Bucket)(nil)

// NewBucket baut den S3-Client aus der Storage-Konfiguration.
func NewBucket(cfg config.StorageConfig) (*Bucket, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3store: S3_BUCKET_NAME nicht konfiguriert")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("s3store: AWS-konfiguration laden: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Bucket{client: client, bucket: cfg.Bucket}, nil
}

// Get lädt ein Objekt vollständig; domain.ErrNotFound, wenn der Key fehlt.
func (b *Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) || strings.Contains(err.Error(), "NoSuchKey") {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("s3store: %s laden: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3store: %s lesen: %w", key, err)
	}
	return data, nil
}

// Put schreibt ein Objekt; ein vorhandenes Objekt desselben Keys wird
// überschrieben.
func (b *Bucket) Put(ctx context.Context, key string, data []byte) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("s3store: %s schreiben: %w", key, err)
	}
	return nil
}

// List liefert alle Keys mit dem Präfix, über alle Seiten hinweg.
func (b *Bucket) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	paginator := s3.NewListObjectsV2Paginator(b.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3store: keys listen: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
