package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
)

// Outcome is a classification result. Degraded marks labels substituted by
// the fallback policy because the upstream call failed or returned
// something unusable; callers always receive a usable value either way.
type Outcome struct {
	Label    string
	Degraded bool
}

// Classifier labels user text. Engines hold the interface so tests can
// substitute deterministic doubles.
type Classifier interface {
	ClassifySentiment(text string) Outcome
	ClassifySeverity(text string) Outcome
}

const (
	defaultSentimentURL = "https://router.huggingface.co/hf-inference/models/cardiffnlp/twitter-roberta-base-sentiment"
	defaultSeverityURL  = "https://router.huggingface.co/hf-inference/models/joeddav/xlm-roberta-large-xnli"
)

// HFClassifier calls the HuggingFace inference API. Every classification is
// a single attempt bounded by the client timeout; failures degrade to a
// default label instead of propagating, because classification enriches a
// write but is never a precondition for it.
type HFClassifier struct {
	sentimentURL string
	severityURL  string
	token        string
	client       *http.Client
}

func NewHFClassifier() *HFClassifier {
	sentimentURL := os.Getenv("HF_SENTIMENT_URL")
	if sentimentURL == "" {
		sentimentURL = defaultSentimentURL
	}
	severityURL := os.Getenv("HF_SEVERITY_URL")
	if severityURL == "" {
		severityURL = defaultSeverityURL
	}
	return &HFClassifier{
		sentimentURL: sentimentURL,
		severityURL:  severityURL,
		token:        os.Getenv("HUGGING_FACE_API_KEY"),
		// 10s keeps one slow inference call from pinning a request worker.
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// sentimentLabels maps the model's raw label space onto sentiments.
var sentimentLabels = map[string]string{
	"LABEL_0": models.SentimentNegative,
	"LABEL_1": models.SentimentNeutral,
	"LABEL_2": models.SentimentPositive,
}

func (h *HFClassifier) ClassifySentiment(text string) Outcome {
	body, err := h.post(h.sentimentURL, map[string]interface{}{"inputs": text})
	if err != nil {
		log.Printf("[classifier] sentiment call failed: %v", err)
		return Outcome{Label: models.SentimentUnknown, Degraded: true}
	}

	// Expected shape: [[{"label": "LABEL_2", "score": 0.98}, ...]]
	var result [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &result); err != nil || len(result) == 0 || len(result[0]) == 0 {
		log.Printf("[classifier] unexpected sentiment response: %s", body)
		return Outcome{Label: models.SentimentUnknown, Degraded: true}
	}

	label, ok := sentimentLabels[result[0][0].Label]
	if !ok {
		log.Printf("[classifier] unrecognized sentiment label %q", result[0][0].Label)
		return Outcome{Label: models.SentimentUnknown, Degraded: true}
	}
	return Outcome{Label: label}
}

func (h *HFClassifier) ClassifySeverity(text string) Outcome {
	body, err := h.post(h.severityURL, map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"candidate_labels": []string{
				models.SeverityModerate,
				models.SeverityHigh,
				models.SeverityUrgent,
			},
		},
	})
	if err != nil {
		log.Printf("[classifier] severity call failed: %v", err)
		return Outcome{Label: models.SeverityModerate, Degraded: true}
	}

	// Zero-shot responses carry the candidates ranked; the top one wins.
	var result struct {
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal(body, &result); err != nil || len(result.Labels) == 0 {
		log.Printf("[classifier] unexpected severity response: %s", body)
		return Outcome{Label: models.SeverityModerate, Degraded: true}
	}

	switch result.Labels[0] {
	case models.SeverityModerate, models.SeverityHigh, models.SeverityUrgent:
		return Outcome{Label: result.Labels[0]}
	}
	log.Printf("[classifier] unrecognized severity label %q", result.Labels[0])
	return Outcome{Label: models.SeverityModerate, Degraded: true}
}

func (h *HFClassifier) post(url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
