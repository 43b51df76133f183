package storage

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=cloudinary.go -destination=mock/uploader_mock.go -package=mock

// Uploader stores an image and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader reads CLOUDINARY_URL from the environment.
func NewCloudinaryUploader(folder string) (Uploader, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, errors.New("CLOUDINARY_URL is required")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}

	return &cloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *cloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:           u.folder,
		FilenameOverride: filename,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", errors.New("upload did not return a url")
	}
	return resp.SecureURL, nil
}
