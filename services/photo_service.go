package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoService hands out presigned S3 URLs for profile photos. The engine
// never proxies image bytes; clients upload directly and store the
// resulting key on their profile.
type PhotoService struct {
	Client *s3.Client
	Bucket string
}

// NewPhotoService initializes the S3 client from the ambient AWS config
func NewPhotoService() *PhotoService {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return &PhotoService{
		Client: s3.NewFromConfig(cfg),
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}
}

// GenerateUploadURL generates a presigned URL for uploading a profile photo
func (ps *PhotoService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-photos/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ps.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ps.Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a profile photo
func (ps *PhotoService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ps.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
