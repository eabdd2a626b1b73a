package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"corpportal/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, folder, ownerID, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании бакета: %w", err)
		}
		log.Printf("Создан бакет MinIO: %s", cfg.MinIO.BucketName)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage кладёт файл в бакет и возвращает имя объекта и публичный URL.
// Тип содержимого определяем по самим байтам, расширению не доверяем -
// аватарки и гифки часто приходят с чужим или пустым расширением.
func (m *MinIOClient) UploadImage(ctx context.Context, folder, ownerID, fileName string, file io.Reader, size int64) (string, string, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", "", fmt.Errorf("ошибка чтения файла: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	contentType := mtype.String()

	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = mtype.Extension()
	}

	now := time.Now()
	objectName := fmt.Sprintf("%s/%s/%d/%02d/%s%s",
		folder,
		ownerID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	reader := io.MultiReader(bytes.NewReader(head), file)

	_, err = m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, reader, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"owner-id":          ownerID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, m.PublicURL(objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(m.cfg.MinIO.PublicHost, "/"),
		m.cfg.MinIO.BucketName,
		objectName)
}
