package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/jaevor/go-nanoid"
)

// ImageStore wysyła obraz do zewnętrznego hostingu i zwraca trwały
// adres URL.
type ImageStore interface {
	Upload(ctx context.Context, image io.Reader) (string, error)
}

// Zdjęcia ogłoszeń są przycinane do stałej szerokości.
const uploadTransformation = "c_fill,w_800"

type CloudinaryStorage struct {
	cld        *cloudinary.Cloudinary
	generateID func() string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	return &CloudinaryStorage{cld: cld, generateID: generateID}, nil
}

func (cs *CloudinaryStorage) Upload(ctx context.Context, image io.Reader) (string, error) {
	result, err := cs.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		PublicID:       "cars/" + cs.generateID(),
		Transformation: uploadTransformation,
	})
	if err != nil {
		return "", err
	}
	// Cloudinary potrafi zwrócić błąd w treści odpowiedzi zamiast w err.
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}

	return result.SecureURL, nil
}
