package utils

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploadsDisabled = errors.New("image uploads are not configured")

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// CloudinaryUploader streams images to Cloudinary storage.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader returns ErrUploadsDisabled when the credentials are
// incomplete so the caller can run without uploads.
func NewCloudinaryUploader(cfg CloudinaryConfig) (*CloudinaryUploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrUploadsDisabled
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	folder := cfg.Folder
	if folder == "" {
		folder = "catalog/images"
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload returns the secure URL of the stored image.
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	uniqueFilename := true
	uploadResult, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       filename,
		Folder:         u.folder,
		UniqueFilename: &uniqueFilename,
	})
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
