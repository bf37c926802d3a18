package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"mediconnect/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploadsDisabled = errors.New("image uploads are not configured")

// ImageUploader stores a doctor portrait and returns its public URL
type ImageUploader interface {
	UploadDoctorImage(ctx context.Context, doctorID string, file io.Reader) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewImageUploader returns a Cloudinary uploader, or a disabled one when no URL is configured
func NewImageUploader(cfg config.CloudinaryConfig) (ImageUploader, error) {
	if cfg.URL == "" {
		return disabledUploader{}, nil
	}

	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Cloudinary: %w", err)
	}

	return &cloudinaryUploader{cld: cld, folder: cfg.Folder}, nil
}

func (u *cloudinaryUploader) UploadDoctorImage(ctx context.Context, doctorID string, file io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: fmt.Sprintf("doctor_%s", doctorID),
	})
	if err != nil {
		return "", fmt.Errorf("upload doctor image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("upload doctor image: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

type disabledUploader struct{}

func (disabledUploader) UploadDoctorImage(ctx context.Context, doctorID string, file io.Reader) (string, error) {
	return "", ErrUploadsDisabled
}
