package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// fallbackReply is returned when the model answers with no choices at all.
const fallbackReply = "Sorry, I'm unable to provide a response right now."

const commentReplySystem = "You are a helpful customer support assistant. " +
	"Based on the sentiment and description provided, write a short, professional, human-like reply. " +
	"Do NOT use any placeholders like [Customer Name] or [Your Name]. " +
	"Write the full message as-is, ready to send. Keep it polite, warm, and direct."

const complaintReplySystem = "You are a professional customer complaint resolution assistant. " +
	"Based on the severity and description, write a short and empathetic reply. " +
	"Be helpful, calm, and acknowledge the seriousness based on severity level."

// LLMService drafts support replies via an OpenAI-compatible chat
// completion endpoint. Unlike the tagging classifiers there is no degraded
// answer worth returning here, so failures surface to the caller.
type LLMService struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

func NewLLMService() *LLMService {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://router.huggingface.co/v1"
	}
	token := os.Getenv("LLM_TOKEN")
	if token == "" {
		token = os.Getenv("HUGGING_FACE_API_KEY")
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "google/gemma-2-2b-it"
	}
	return &LLMService{
		baseURL: baseURL,
		token:   token,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateCommentReply drafts a ready-to-send answer to a user comment.
func (s *LLMService) GenerateCommentReply(sentiment, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Sentiment: %s\nCustomer description: %q\n\n"+
			"Write a ready-to-send reply without using placeholders. "+
			"If negative, be apologetic and helpful. If positive, thank them. "+
			"If neutral, acknowledge their description. Keep it under 100 words.",
		sentiment, description)
	return s.chatCompletion(commentReplySystem, prompt)
}

// GenerateComplaintReply drafts a resolution message for a complaint.
func (s *LLMService) GenerateComplaintReply(severity, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Severity: %s\nComplaint: %q\n\n"+
			"Write a polite, human-sounding message ready to be sent. "+
			"For \"Urgent\", be especially quick and serious. "+
			"For \"High\", be helpful and promise fast resolution. "+
			"For \"Moderate\", acknowledge and show intent to fix. Keep it under 100 words.",
		severity, description)
	return s.chatCompletion(complaintReplySystem, prompt)
}

func (s *LLMService) chatCompletion(system, user string) (string, error) {
	payload := ChatRequest{
		Model: s.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM API returned status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return fallbackReply, nil
	}
	return chatResp.Choices[0].Message.Content, nil
}
