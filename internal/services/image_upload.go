package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// ImgurResponse Imgur API response envelope
type ImgurResponse struct {
	Data struct {
		ID         string `json:"id"`
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
		Type       string `json:"type"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// ImageUploadResult is what the attachment store hands back: a public URL
// plus the handles needed to reference and later delete the file.
type ImageUploadResult struct {
	URL        string `json:"url"`
	ID         string `json:"id"`
	DeleteHash string `json:"-"`
}

const imgurAPI = "https://api.imgur.com/3/image"

// UploadToImgur stores an uploaded file with Imgur and returns its handles.
func UploadToImgur(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	clientID := os.Getenv("IMGUR_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("IMGUR_CLIENT_ID is not configured")
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	base64Image := base64.StdEncoding.EncodeToString(fileBytes)

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	if err := writer.WriteField("image", base64Image); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := writer.WriteField("type", "base64"); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	writer.Close()

	req, err := http.NewRequest("POST", imgurAPI, &requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+clientID)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var imgurResp ImgurResponse
	if err := json.Unmarshal(body, &imgurResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if !imgurResp.Success {
		return nil, fmt.Errorf("imgur upload failed: status %d", imgurResp.Status)
	}

	return &ImageUploadResult{
		URL:        imgurResp.Data.Link,
		ID:         imgurResp.Data.ID,
		DeleteHash: imgurResp.Data.DeleteHash,
	}, nil
}

// DeleteFromImgur removes a previously uploaded file. Callers treat this as
// best-effort; a leaked remote file is preferable to a blocked update.
func DeleteFromImgur(deleteHash string) error {
	if deleteHash == "" {
		return nil
	}
	clientID := os.Getenv("IMGUR_CLIENT_ID")
	if clientID == "" {
		return fmt.Errorf("IMGUR_CLIENT_ID is not configured")
	}

	req, err := http.NewRequest("DELETE", imgurAPI+"/"+deleteHash, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+clientID)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("imgur delete failed: status %d", resp.StatusCode)
	}
	return nil
}

// UploadImage is the generic entry point (the backing service could be
// swapped without touching handlers). Currently Imgur.
func UploadImage(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	return UploadToImgur(file, header)
}
