package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretStatusPassthrough(t *testing.T) {
	input := `{"is_set": true, "location": "keyring", "updated": 3}`

	var s SecretStatus
	require.NoError(t, json.Unmarshal([]byte(input), &s))
	assert.True(t, s.IsSet)
	assert.Len(t, s.Extra, 2)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestSecretStatusIsSetStrict(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`{"is_set": true}`, true},
		{`{"is_set": false}`, false},
		{`{"is_set": null}`, false},
		{`{"is_set": "yes"}`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s SecretStatus
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.want, s.IsSet)
		})
	}
}

func TestProviderResponseDisplayName(t *testing.T) {
	name := "OpenAI"
	empty := ""

	assert.Equal(t, "OpenAI", ProviderResponse{Name: &name}.DisplayName())
	assert.Equal(t, "Unknown Provider", ProviderResponse{Name: &empty}.DisplayName())
	assert.Equal(t, "Unknown Provider", ProviderResponse{}.DisplayName())
}

func TestActiveProviderNames(t *testing.T) {
	openai, cohere := "OpenAI", "Cohere"
	status := SecretsStatus{
		"openai": {Name: &openai, SecretStatus: map[string]SecretStatus{"KEY1": {IsSet: true}}},
		"cohere": {Name: &cohere, SecretStatus: map[string]SecretStatus{"KEY2": {IsSet: false}}},
		"empty":  {SecretStatus: map[string]SecretStatus{}},
		"none":   {},
	}

	assert.Equal(t, []string{"OpenAI"}, ActiveProviderNames(status))
	assert.Equal(t, []string{}, ActiveProviderNames(nil))
}

func TestStaticConfig(t *testing.T) {
	cfg := StaticConfig{URL: "http://localhost:3000", Secret: "s"}
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL())
	assert.Equal(t, "s", cfg.SecretKey())

	var fn ConfigFunc
	assert.Empty(t, fn.BaseURL())
	assert.Empty(t, fn.SecretKey())
}
