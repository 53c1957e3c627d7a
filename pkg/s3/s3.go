// Package s3 uploads catalog thumbnail images to the configured bucket.
package s3

import (
	"io"
	"mime"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"

	"video-catalog/cmd/config"
)

var (
	once     sync.Once
	uploader *s3manager.Uploader
)

func getUploader() *s3manager.Uploader {
	once.Do(func() {
		sess := session.Must(session.NewSession(&aws.Config{
			Region: aws.String(config.AWSRegion),
		}))
		uploader = s3manager.NewUploader(sess)
	})
	return uploader
}

// UploadFile stores the object under key and returns its public URL.
// The content type is derived from the key's extension.
func UploadFile(body io.Reader, key string) (string, error) {
	result, err := getUploader().Upload(&s3manager.UploadInput{
		Bucket:      aws.String(config.S3Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(mime.TypeByExtension(filepath.Ext(key))),
	})
	if err != nil {
		logrus.Errorf("upload %s: %v", key, err)
		return "", err
	}
	return result.Location, nil
}
