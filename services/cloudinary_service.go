package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore is the ObjectStore backed by a Cloudinary account.
type CloudinaryStore struct {
	cld  *cloudinary.Cloudinary
	root string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, root string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{cld: cld, root: root}, nil
}

// Upload sends one image under root/folder and returns its secure URL.
func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, name, folder string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         path.Join(s.root, folder),
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if name != "" {
		params.PublicID = name
	}

	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}
