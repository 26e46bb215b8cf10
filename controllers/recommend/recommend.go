package recommendControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"

	"github.com/gin-gonic/gin"
)

// Gift recommendations: one structured prompt to a hosted model, one
// response parsed against a fixed schema. No retry, no caching, no
// streaming; any transport or schema failure propagates.

const minInputLength = 10

const promptTemplate = `You are a gift recommendation assistant for an online gift store.
Based on the customer's purchase history and browsing data below, suggest gift ideas.

Purchase history:
%s

Browsing data:
%s

Respond with ONLY a JSON array of 5 short recommendation strings, for example:
["A scented candle set", "A personalized photo frame"]`

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getModelConfig reads the hosted-model endpoint from the environment.
func getModelConfig() (apiURL, apiKey, model string, err error) {
	apiURL = os.Getenv("RECOMMEND_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}
	model = os.Getenv("RECOMMEND_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	apiKey = os.Getenv("RECOMMEND_API_KEY")
	if apiKey == "" {
		return "", "", "", fmt.Errorf("recommendation configuration missing")
	}
	return apiURL, apiKey, model, nil
}

// GetRecommendations sends one prompt to the hosted model and returns
// the recommendation strings.
func GetRecommendations(purchaseHistory, browsingData string) ([]string, error) {
	apiURL, apiKey, model, err := getModelConfig()
	if err != nil {
		return nil, err
	}

	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, purchaseHistory, browsingData)},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach recommendation model: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %v", err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("model error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	return parseRecommendations(chatResp.Choices[0].Message.Content)
}

// jsonArrayPattern matches a JSON array, including ones wrapped in
// markdown code fences the way chat models like to answer.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseRecommendations extracts the JSON array of strings from the
// model's reply and validates the schema.
func parseRecommendations(content string) ([]string, error) {
	raw := jsonArrayPattern.FindString(content)
	if raw == "" {
		return nil, fmt.Errorf("model response contains no JSON array")
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(raw), &recommendations); err != nil {
		return nil, fmt.Errorf("model response does not match schema: %v", err)
	}
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("model returned no recommendations")
	}
	return recommendations, nil
}

type RecommendationRequest struct {
	PurchaseHistory string `json:"purchase_history" binding:"required"`
	BrowsingData    string `json:"browsing_data" binding:"required"`
}

// POST /user/recommendations
func GetRecommendationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.PurchaseHistory) < minInputLength || len(req.BrowsingData) < minInputLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "purchase_history and browsing_data must each be at least 10 characters"})
			return
		}

		recommendations, err := GetRecommendations(req.PurchaseHistory, req.BrowsingData)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
	}
}
