package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"souk/config"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadToImageHost proxies an image to the configured external image host
// and returns the hosted URL. The filename is replaced with a UUID so
// caller-supplied names never reach the host.
func UploadToImageHost(data []byte, originalName string) (string, error) {
	if config.AppConfig.ImageHostKey == "" {
		return "", fmt.Errorf("image host is not configured")
	}

	newName := uuid.NewString() + filepath.Ext(originalName)

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetQueryParam("key", config.AppConfig.ImageHostKey).
		SetFileReader("image", newName, bytes.NewReader(data)).
		Post(config.AppConfig.ImageHostURL)
	if err != nil {
		log.Printf("Image host upload error: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Image host upload failed: %d %s", resp.StatusCode(), resp.String())
		return "", fmt.Errorf("image host responded with %d", resp.StatusCode())
	}

	var hostResp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &hostResp); err != nil || hostResp.Data.URL == "" {
		return "", fmt.Errorf("invalid image host response")
	}

	return hostResp.Data.URL, nil
}
