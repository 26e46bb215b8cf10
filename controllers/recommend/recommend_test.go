package recommendControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "plain array",
			content: `["A scented candle set", "A photo frame"]`,
			want:    []string{"A scented candle set", "A photo frame"},
		},
		{
			name:    "array in markdown fence",
			content: "Here you go:\n```json\n[\"A mug\", \"A plant\"]\n```",
			want:    []string{"A mug", "A plant"},
		},
		{
			name:    "no array",
			content: "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "wrong element type",
			content: `[{"name": "mug"}]`,
			wantErr: true,
		},
		{
			name:    "empty array",
			content: `[]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecommendations(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "bought a teddy bear")

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `["A gift basket", "A board game"]`}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	t.Setenv("RECOMMEND_API_URL", server.URL)
	t.Setenv("RECOMMEND_API_KEY", "test-key")

	recommendations, err := GetRecommendations("bought a teddy bear last month", "looked at puzzles")
	require.NoError(t, err)
	assert.Equal(t, []string{"A gift basket", "A board game"}, recommendations)
}

func TestGetRecommendationsTruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare more bytes than are sent, so the client's read fails
		w.Header().Set("Content-Length", "500")
		w.Write([]byte(`{"choices":`))
	}))
	defer server.Close()

	t.Setenv("RECOMMEND_API_URL", server.URL)
	t.Setenv("RECOMMEND_API_KEY", "test-key")

	_, err := GetRecommendations("bought a teddy bear last month", "looked at puzzles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read model response")
}

func TestGetRecommendationsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	t.Setenv("RECOMMEND_API_URL", server.URL)
	t.Setenv("RECOMMEND_API_KEY", "test-key")

	_, err := GetRecommendations("bought a teddy bear last month", "looked at puzzles")
	assert.Error(t, err)
}

func TestGetRecommendationsMissingConfig(t *testing.T) {
	t.Setenv("RECOMMEND_API_KEY", "")

	_, err := GetRecommendations("bought a teddy bear last month", "looked at puzzles")
	assert.Error(t, err)
}
