package cloudstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadFolder is the fixed logical namespace all wardrobe images land under.
const uploadFolder = "closet_ai"

// Client wraps the Cloudinary SDK for garment image uploads.
type Client struct {
	cld *cloudinary.Cloudinary
}

// NewClient creates a Cloudinary-backed image store client.
func NewClient(cloudName, apiKey, apiSecret string) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &Client{cld: cld}, nil
}

// Upload streams the raw image buffer to Cloudinary and returns the durable,
// publicly fetchable URL. The binary itself is not retained locally.
func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}
