package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const presignTTL = 24 * time.Hour

// Config параметры хранилища
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	Prefix        string
	AccessKey     string
	SecretKey     string
	UsePathStyle  bool
	PublicBaseURL string
	Timeout       time.Duration // таймаут HTTP запроса к S3; 0 - без ограничения
}

// Client хранилище фотографий номеров в S3-совместимом бакете
type Client struct {
	s3            S3API
	presigner     Presigner
	bucket        string
	prefix        string
	publicBaseURL string
	now           func() time.Time
	log           Logger
}

// NewS3Client создает клиент S3; статические ключи и endpoint нужны для MinIO
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.Timeout)))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrInternal, err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// NewClient создает новый экземпляр хранилища; presigner может быть nil
func NewClient(api S3API, presigner Presigner, cfg Config, log Logger) *Client {
	return &Client{
		s3:            api,
		presigner:     presigner,
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		now:           time.Now,
		log:           log,
	}
}

// Upload сохраняет фотографию под именем {PLATE}_{SLOT}_{RFC3339}.jpg вместе с метаданными
func (c *Client) Upload(ctx context.Context, data []byte, meta domain.ImageMetadata) (*UploadResult, error) {
	capturedAt := c.now().UTC().Format(time.RFC3339)
	name := fmt.Sprintf("%s_%d_%s.jpg", meta.LicensePlate, meta.SlotNumber, capturedAt)
	key := c.key(name)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeJPEG),
		Metadata: map[string]string{
			metaLicensePlate: meta.LicensePlate,
			metaVehicleType:  meta.VehicleType,
			metaSlotNumber:   strconv.Itoa(meta.SlotNumber),
			metaTimestamp:    capturedAt,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: put object %s: %v", ErrInternal, key, err)
	}

	url, err := c.url(ctx, key)
	if err != nil {
		return nil, err
	}

	return &UploadResult{Name: name, Key: key, URL: url}, nil
}

// UploadWithGracefulDegradation загружает фотографию; при недоступности хранилища
// возвращает ErrServiceDegraded, чтобы регистрация продолжилась без фотографии
func (c *Client) UploadWithGracefulDegradation(ctx context.Context, data []byte, meta domain.ImageMetadata) (*UploadResult, error) {
	c.log.Info("Uploading license plate image plate=%s slot=%d size=%d", meta.LicensePlate, meta.SlotNumber, len(data))

	result, err := c.Upload(ctx, data, meta)
	if err != nil {
		c.log.Error("Image store unavailable, continuing without image plate=%s slot=%d: %v", meta.LicensePlate, meta.SlotNumber, err)
		return nil, fmt.Errorf("%w: plate=%s, error=%v", ErrServiceDegraded, meta.LicensePlate, err)
	}

	c.log.Info("Successfully uploaded image key=%s", result.Key)
	return result, nil
}

// List возвращает журнал фотографий, новые первыми.
// Объекты, метаданные которых прочитать не удалось, пропускаются.
func (c *Client) List(ctx context.Context) ([]domain.StoredImage, error) {
	objects, err := c.listObjects(ctx)
	if err != nil {
		return nil, err
	}

	images := make([]domain.StoredImage, 0, len(objects))
	for _, obj := range objects {
		key := aws.ToString(obj.Key)

		head, err := c.s3.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			c.log.Warn("List: failed to read metadata key=%s: %v", key, err)
			continue
		}

		url, err := c.url(ctx, key)
		if err != nil {
			c.log.Warn("List: failed to build url key=%s: %v", key, err)
			continue
		}

		images = append(images, toStoredImage(c.name(key), url, obj, head))
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].CapturedAt.After(images[j].CapturedAt)
	})

	return images, nil
}

// Delete удаляет одну фотографию по имени
func (c *Client) Delete(ctx context.Context, name string) error {
	if name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
		return ErrInvalidName
	}
	key := c.key(name)

	_, err := c.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return ErrImageNotFound
		}
		return fmt.Errorf("%w: head object %s: %v", ErrInternal, key, err)
	}

	return c.deleteKey(ctx, key)
}

// DeleteKey удаляет объект по полному ключу без предварительной проверки
func (c *Client) DeleteKey(ctx context.Context, key string) error {
	return c.deleteKey(ctx, key)
}

// DeleteAll удаляет все фотографии каталога, возвращает количество удаленных
func (c *Client) DeleteAll(ctx context.Context) (int, error) {
	objects, err := c.listObjects(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, obj := range objects {
		if err := c.deleteKey(ctx, aws.ToString(obj.Key)); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

func (c *Client) deleteKey(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete object %s: %v", ErrInternal, key, err)
	}
	return nil
}

func (c *Client) listObjects(ctx context.Context) ([]s3types.Object, error) {
	paginator := s3.NewListObjectsV2Paginator(c.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(c.prefix + "/"),
	})

	var objects []s3types.Object
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list objects: %v", ErrInternal, err)
		}
		objects = append(objects, page.Contents...)
	}

	return objects, nil
}

func (c *Client) key(name string) string {
	return c.prefix + "/" + name
}

func (c *Client) name(key string) string {
	return strings.TrimPrefix(key, c.prefix+"/")
}

func (c *Client) url(ctx context.Context, key string) (string, error) {
	if c.publicBaseURL != "" {
		return c.publicBaseURL + "/" + key, nil
	}
	if c.presigner == nil {
		return fmt.Sprintf("s3://%s/%s", c.bucket, key), nil
	}

	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("%w: presign %s: %v", ErrInternal, key, err)
	}
	return req.URL, nil
}

func toStoredImage(name, url string, obj s3types.Object, head *s3.HeadObjectOutput) domain.StoredImage {
	image := domain.StoredImage{
		Name:         name,
		URL:          url,
		LicensePlate: head.Metadata[metaLicensePlate],
		VehicleType:  head.Metadata[metaVehicleType],
		SlotNumber:   head.Metadata[metaSlotNumber],
		CapturedAt:   aws.ToTime(obj.LastModified),
	}

	if ts, err := time.Parse(time.RFC3339, head.Metadata[metaTimestamp]); err == nil {
		image.CapturedAt = ts
	}

	return image
}

func isNotFound(err error) bool {
	var notFound *s3types.NotFound
	var noSuchKey *s3types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
