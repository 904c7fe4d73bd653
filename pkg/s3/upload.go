package s3

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// NewClient returns an s3 client for the region.
func NewClient(region string) *awss3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:     &region,
		MaxRetries: aws.Int(10),
	}))
	return awss3.New(sess)
}

// Upload writes an encoded tile to bucket/key.
func Upload(svc s3iface.S3API, bucket, key string, body []byte) error {
	rdr := bytes.NewReader(body)
	input := awss3.PutObjectInput{
		Body:          rdr,
		Bucket:        &bucket,
		ContentType:   aws.String("application/octet-stream"),
		ContentLength: aws.Int64(int64(rdr.Len())),
		Key:           &key,
	}
	if _, err := svc.PutObject(&input); err != nil {
		return fmt.Errorf("uploading s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
