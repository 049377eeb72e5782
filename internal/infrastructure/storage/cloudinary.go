package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/statusmarket/statusmarket-backend/internal/domain/ports"
)

const dataURIPrefix = "data:"

// CloudinaryStorage implementa ports.ImageStorage usando o Cloudinary
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	logger ports.Logger
}

// NewCloudinaryStorage cria um novo adaptador para o Cloudinary
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string, logger ports.Logger) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryStorage{
		client: client,
		logger: logger,
	}, nil
}

// Upload envia uma imagem inline para o Cloudinary e retorna a URL segura.
// URLs absolutas passam direto, sem re-upload.
func (s *CloudinaryStorage) Upload(ctx context.Context, image, folder string) (string, error) {
	trimmed := strings.TrimSpace(image)

	if strings.HasPrefix(trimmed, "http") {
		return trimmed, nil
	}

	result, err := s.client.Upload.Upload(ctx, normalizeToDataURI(trimmed), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		s.logger.Error("image upload failed", "folder", folder, "error", err)
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return result.SecureURL, nil
}

// normalizeToDataURI aceita tanto data URIs completos quanto payloads
// base64 crus, assumindo JPEG nesse caso
func normalizeToDataURI(input string) string {
	if strings.HasPrefix(input, dataURIPrefix) {
		return input
	}
	return "data:image/jpeg;base64," + input
}
