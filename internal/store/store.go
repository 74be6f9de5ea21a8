package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"dashd/internal/models"
	"dashd/internal/providers"
	"dashd/internal/structures"
)

// ErrNotFound is returned by Get when no document exists for the
// (type, date) pair. Collectors treat it as "start a fresh document";
// the Read API maps it to 404.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the key-value contract over one (type, date) pair.
type DocumentStore interface {
	Get(ctx context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error)
	Put(ctx context.Context, typ models.StatType, date models.DateKey, doc *models.StatDocument) error
}

// FileName is the storage naming convention shared by the file and S3
// backends. It is load-bearing for compatibility and never derived from
// HTTP route strings.
func FileName(typ models.StatType, date models.DateKey) string {
	return fmt.Sprintf("statistics-%s-%s.json", typ, date)
}

// ObjectKey nests the file name under a per-type prefix for S3.
func ObjectKey(typ models.StatType, date models.DateKey) string {
	return fmt.Sprintf("%s/%s", typ, FileName(typ, date))
}

// PartitionKey is the DynamoDB partition key, "{TYPE}#{YYYYMMDD}".
func PartitionKey(typ models.StatType, date models.DateKey) string {
	return fmt.Sprintf("%s#%s", strings.ToUpper(string(typ)), date)
}

// SortKey is the DynamoDB sort key, "TIMESTAMP#{ISO-8601}".
func SortKey(t time.Time) string {
	return "TIMESTAMP#" + t.UTC().Format(time.RFC3339Nano)
}

// NewDocumentStore builds the configured backend, wrapped with an S3
// mirror when mirroring is enabled.
func NewDocumentStore(conf *structures.Config, logger providers.Logger) (DocumentStore, error) {
	primary, err := newBackend(conf, logger)
	if err != nil {
		return nil, err
	}

	if !conf.Mirror.Enabled {
		return primary, nil
	}

	awsConf, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(conf.Mirror.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for mirror: %w", err)
	}
	secondary := NewS3Store(s3.NewFromConfig(awsConf), conf.Mirror.Bucket, conf.Mirror.Prefix)
	logger.Infof(providers.TypeApp, "Mirroring documents to s3://%s/%s", conf.Mirror.Bucket, conf.Mirror.Prefix)

	return NewMirrorStore(primary, secondary, logger), nil
}

func newBackend(conf *structures.Config, logger providers.Logger) (DocumentStore, error) {
	switch conf.Store.Backend {
	case "file":
		var compressor CompressorInterface
		if conf.Store.Compress {
			c, err := NewZstdCompressor()
			if err != nil {
				return nil, err
			}
			compressor = c
		}
		logger.Infof(providers.TypeApp, "Using file store in %s (compress=%t)", conf.Store.Dir, conf.Store.Compress)
		return NewFileStore(conf.Store.Dir, compressor)
	case "s3":
		awsConf, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(conf.Store.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		logger.Infof(providers.TypeApp, "Using s3 store s3://%s/%s", conf.Store.Bucket, conf.Store.Prefix)
		return NewS3Store(s3.NewFromConfig(awsConf), conf.Store.Bucket, conf.Store.Prefix), nil
	case "dynamodb":
		awsConf, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(conf.Store.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		logger.Infof(providers.TypeApp, "Using dynamodb store table %s", conf.Store.Table)
		return NewDynamoStore(dynamodb.NewFromConfig(awsConf), conf.Store.Table), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", conf.Store.Backend)
	}
}
