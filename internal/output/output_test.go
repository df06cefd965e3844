package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/providerkeys/pkg/providers"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "wide", want: FormatWide},
		{in: "", want: ""},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, FormatJSON, detectForFile(f))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Required Keys", Header("required_keys"))
	assert.Equal(t, "Name", Header("name"))
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatWide))
	assert.IsType(t, &TableFormatter{}, NewFormatter("unknown"))
}

func TestTableFormatter(t *testing.T) {
	data := ProvidersTable([]providers.Provider{
		{ID: "openai", Name: "OpenAI", Description: "GPT models", Models: []string{"gpt-4o", "o3"}, RequiredKeys: []string{"OPENAI_API_KEY"}},
		{ID: "bare", Name: "Unknown Provider", Description: "No description available.", Models: []string{}, RequiredKeys: []string{}},
	}, true)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "OPENAI_API_KEY")
	assert.Contains(t, out, "gpt-4o, o3")
	assert.Contains(t, out, "GPT models")
	assert.Contains(t, out, "Unknown Provider")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
}

func TestYAMLFormatterUsesJSONNames(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatYAML).Format(&buf, []providers.Provider{
		{ID: "openai", Name: "OpenAI", Models: []string{}, RequiredKeys: []string{"OPENAI_API_KEY"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "id: openai")
	assert.Contains(t, out, "required_keys:")
	assert.Contains(t, out, "OPENAI_API_KEY")
}

func TestJSONFormatterSecretStatusPassthrough(t *testing.T) {
	name := "OpenAI"
	status := providers.SecretsStatus{
		"openai": {Name: &name, SecretStatus: map[string]providers.SecretStatus{
			"KEY1": {IsSet: true},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, status))
	assert.JSONEq(t, `{"openai": {"name": "OpenAI", "secret_status": {"KEY1": {"is_set": true}}}}`, buf.String())
}

func TestProvidersTable(t *testing.T) {
	list := []providers.Provider{
		{ID: "bare", Name: "Unknown Provider", Models: []string{}, RequiredKeys: []string{}},
	}

	data := ProvidersTable(list, false)
	assert.Equal(t, []string{"ID", "Name", "Models", "Required Keys"}, data.Headers)
	assert.Equal(t, [][]string{{"bare", "Unknown Provider", "-", "-"}}, data.Rows)

	wide := ProvidersTable(list, true)
	assert.Len(t, wide.Headers, 5)
	assert.Equal(t, "Description", wide.Headers[4])
}

func TestSecretsTable(t *testing.T) {
	openai := "OpenAI"
	status := providers.SecretsStatus{
		"openai": {Name: &openai, SecretStatus: map[string]providers.SecretStatus{
			"B_KEY": {IsSet: false},
			"A_KEY": {IsSet: true},
		}},
		"anthropic": {},
	}

	data := SecretsTable(status)
	assert.Equal(t, [][]string{
		{"anthropic", "Unknown Provider", "-", "-"},
		{"openai", "OpenAI", "A_KEY", "yes"},
		{"openai", "OpenAI", "B_KEY", "no"},
	}, data.Rows)
}
