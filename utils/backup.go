package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 prepares the backup uploader. Optional: when region loading fails,
// backups fall back to local copies only.
func InitS3(region string) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		Warning("AWS config unavailable, backups stay local: %v", err)
		return
	}
	s3Client = s3.NewFromConfig(cfg)
}

// BackupDatabase copies the sqlite file to a timestamped sibling and, when a
// bucket is configured and the S3 client is ready, uploads the copy as well.
// It returns the local backup path.
func BackupDatabase(dbPath, bucket string) (string, error) {
	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer src.Close()

	stamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.%s.bak", dbPath, stamp)

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}

	if bucket != "" && s3Client != nil {
		data, err := os.ReadFile(backupPath)
		if err != nil {
			return "", fmt.Errorf("read backup for upload: %w", err)
		}
		key := fmt.Sprintf("backups/%s-%s", stamp, filepath.Base(dbPath))
		_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(data),
		})
		if err != nil {
			return "", fmt.Errorf("upload backup to S3: %w", err)
		}
	}

	return backupPath, nil
}
