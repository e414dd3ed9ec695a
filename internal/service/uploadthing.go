package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/jarana/guia/internal/domain"
)

const uploadThingAPIRoot = "https://api.uploadthing.com"

type uploadThingToken struct {
	APIKey string `json:"apiKey"`
	AppID  string `json:"appId"`
}

type prepareUploadRequest struct {
	FileName string `json:"fileName"`
	FileSize int    `json:"fileSize"`
	FileType string `json:"fileType,omitempty"`
}

type prepareUploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadThingImageStore hosts promoter pictures on UploadThing.
type UploadThingImageStore struct {
	apiRoot string
	apiKey  string
	appID   string
	client  *http.Client
}

// NewUploadThingImageStore builds a store from the base64 JSON token shown in
// the UploadThing dashboard.
func NewUploadThingImageStore(token string, timeout time.Duration) (*UploadThingImageStore, error) {
	decoded, err := decodeUploadThingToken(token)
	if err != nil {
		return nil, err
	}
	if decoded.APIKey == "" || decoded.AppID == "" {
		return nil, errors.New("missing UploadThing credentials (apiKey/appId)")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &UploadThingImageStore{
		apiRoot: uploadThingAPIRoot,
		apiKey:  decoded.APIKey,
		appID:   decoded.AppID,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (s *UploadThingImageStore) Save(ctx context.Context, upload domain.ImageUpload) (domain.Image, error) {
	ext, err := imageExtension(upload.Filename)
	if err != nil {
		return domain.Image{}, err
	}
	if len(upload.Data) == 0 {
		return domain.Image{}, errors.New("empty file")
	}

	fileName := sanitizeFileName(upload.Filename)
	if fileName == "" {
		fileName = "image." + ext
	}

	uploadURL, fileKey, err := s.prepareUpload(ctx, fileName, upload.ContentType, len(upload.Data))
	if err != nil {
		return domain.Image{}, err
	}

	if err := s.putMultipartFile(ctx, uploadURL, fileName, upload.ContentType, upload.Data); err != nil {
		return domain.Image{}, err
	}

	return domain.RemoteImage(fmt.Sprintf("https://%s.ufs.sh/f/%s", s.appID, fileKey), fileKey), nil
}

// Delete removes a hosted picture. Images without a file key were not uploaded
// by this store and are left alone.
func (s *UploadThingImageStore) Delete(ctx context.Context, img domain.Image) error {
	key := strings.TrimSpace(img.Key)
	if img.Kind != domain.ImageRemoteURL || key == "" {
		return nil
	}

	body, err := json.Marshal(map[string]interface{}{
		"fileKeys": []string{key},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiRoot+"/v6/deleteFiles", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-uploadthing-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("uploadthing delete failed (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
}

func (s *UploadThingImageStore) prepareUpload(ctx context.Context, fileName, contentType string, fileSize int) (string, string, error) {
	body, err := json.Marshal(prepareUploadRequest{
		FileName: fileName,
		FileSize: fileSize,
		FileType: strings.TrimSpace(contentType),
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiRoot+"/v7/prepareUpload", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-uploadthing-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("uploadthing prepare failed (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var prepared prepareUploadResponse
	if err := json.Unmarshal(respBody, &prepared); err != nil {
		return "", "", fmt.Errorf("uploadthing prepare parse failed: %w", err)
	}
	if prepared.URL == "" || prepared.Key == "" {
		return "", "", errors.New("uploadthing prepare returned missing url/key")
	}

	return prepared.URL, prepared.Key, nil
}

func (s *UploadThingImageStore) putMultipartFile(ctx context.Context, uploadURL, fileName, contentType string, file []byte) error {
	if strings.TrimSpace(contentType) == "" {
		contentType = "application/octet-stream"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := part.Write(file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-uploadthing-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	respBody, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("uploadthing upload failed (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
}

func decodeUploadThingToken(token string) (*uploadThingToken, error) {
	token = strings.Trim(strings.TrimSpace(token), `"'`)
	if token == "" {
		return nil, errors.New("UPLOADTHING_TOKEN is required")
	}

	decoders := []func(string) ([]byte, error){
		base64.StdEncoding.DecodeString,
		base64.RawStdEncoding.DecodeString,
		base64.URLEncoding.DecodeString,
		base64.RawURLEncoding.DecodeString,
	}

	var lastErr error
	for _, decode := range decoders {
		raw, err := decode(token)
		if err != nil {
			lastErr = err
			continue
		}
		var payload uploadThingToken
		if err := json.Unmarshal(raw, &payload); err != nil {
			lastErr = err
			continue
		}
		return &payload, nil
	}

	return nil, fmt.Errorf("failed to decode UPLOADTHING_TOKEN: %w", lastErr)
}

// sanitizeFileName keeps letters, digits, dot, dash and underscore.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, ch := range name {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') || ch == '.' || ch == '_' || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}

	return strings.Trim(b.String(), "._-")
}
