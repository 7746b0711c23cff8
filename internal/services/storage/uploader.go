package storage

import (
	"bytes"
	"fmt"

	"github.com/doanhtu/image-interpolation/pkg/utils"
)

// Upload pushes a variant to Supabase Storage and returns its public
// URL. Returns an empty URL without error when Supabase is not
// configured.
func (s *Service) Upload(data []byte, filename string) (string, error) {
	if s.sbClient == nil {
		return "", nil
	}

	key := utils.GenerateStorageKey(filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}

// Delete removes a stored object.
func (s *Service) Delete(path string) error {
	if s.sbClient == nil {
		return nil
	}
	_, err := s.sbClient.RemoveFile(s.bucket, []string{path})
	return err
}
