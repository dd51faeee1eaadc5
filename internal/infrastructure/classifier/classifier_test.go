package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmind/internal/shared/logger"
)

func TestStaticClassifier_Classify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory string
	}{
		{name: "network complaint", text: "The hostel wifi keeps dropping", wantCategory: "network"},
		{name: "mess complaint", text: "The mess food quality is terrible", wantCategory: "mess"},
		{name: "academic complaint", text: "My exam marks were entered wrong", wantCategory: "academic"},
		{name: "no keyword match", text: "Something unspecific happened", wantCategory: "other"},
	}

	c := NewStaticClassifier()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, "static", result.Source)
		})
	}
}

func TestStaticClassifier_Deterministic(t *testing.T) {
	c := NewStaticClassifier()
	text := "The mess food made several students sick"

	first, err := c.Classify(context.Background(), text)
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHTTPClassifier_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":"network","confidence":0.87}`))
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, time.Second, logger.NewLogger())
	result, err := c.Classify(context.Background(), "wifi is down in block B")

	require.NoError(t, err)
	assert.Equal(t, "network", result.Category)
	assert.InDelta(t, 0.87, result.Confidence, 0.001)
	assert.Equal(t, "http", result.Source)
}

func TestHTTPClassifier_Classify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, time.Second, logger.NewLogger())
	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
}

func TestHTTPClassifier_Classify_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL, 50*time.Millisecond, logger.NewLogger())
	_, err := c.Classify(context.Background(), "anything")

	assert.Error(t, err)
}
