package submission

import (
	"bytes"
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/models"
	"calculator-service/internal/pkg/constvars"
	"calculator-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

// objectPutter is the part of *minio.Client the sink uses.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioSink struct {
	client objectPutter
	bucket string
}

func NewMinioSink(client *minio.Client, bucket string) contracts.SubmissionSink {
	return &minioSink{client: client, bucket: bucket}
}

func (s *minioSink) Name() string {
	return constvars.SubmissionSinkMinio
}

// Deliver archives the envelope as submissions/<type>/<id>.json.
func (s *minioSink) Deliver(ctx context.Context, envelope *models.SubmissionEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf(constvars.MinioObjectSubmissionFormat, envelope.CalculatorType, envelope.SubmissionID)
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
		UserMetadata: map[string]string{
			"calculator-type": string(envelope.CalculatorType),
		},
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucket)
	}
	return nil
}
