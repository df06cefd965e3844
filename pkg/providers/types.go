package providers

import (
	"bytes"
	"encoding/json"

	"github.com/agentstation/providerkeys/pkg/constants"
)

// Provider is a normalized entry of the agent backend's provider catalog.
type Provider struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Models       []string `json:"models" yaml:"models"`
	RequiredKeys []string `json:"required_keys" yaml:"required_keys"`
}

// catalogEntry is the raw shape served by the catalog endpoint.
type catalogEntry struct {
	ID      string          `json:"id"`
	Details *catalogDetails `json:"details,omitempty"`
}

type catalogDetails struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Models       []string `json:"models,omitempty"`
	RequiredKeys []string `json:"required_keys,omitempty"`
}

// normalize fills each missing detail field with its display default.
func (e catalogEntry) normalize() Provider {
	p := Provider{
		ID:           e.ID,
		Name:         constants.UnknownProviderName,
		Description:  constants.NoDescription,
		Models:       []string{},
		RequiredKeys: []string{},
	}
	if e.Details == nil {
		return p
	}

	if e.Details.Name != "" {
		p.Name = e.Details.Name
	}
	if e.Details.Description != "" {
		p.Description = e.Details.Description
	}
	if e.Details.Models != nil {
		p.Models = e.Details.Models
	}
	if e.Details.RequiredKeys != nil {
		p.RequiredKeys = e.Details.RequiredKeys
	}
	return p
}

// SecretStatus reports whether one required key of a provider is stored.
// Fields other than is_set are kept in Extra and written back on encode.
type SecretStatus struct {
	IsSet bool                       `json:"is_set"`
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler. Only a literal true counts as set.
func (s *SecretStatus) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	s.IsSet = false
	s.Extra = nil
	for key, raw := range fields {
		if key == "is_set" {
			s.IsSet = bytes.Equal(bytes.TrimSpace(raw), []byte("true"))
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]json.RawMessage)
		}
		s.Extra[key] = raw
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s SecretStatus) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(s.Extra)+1)
	for key, raw := range s.Extra {
		fields[key] = raw
	}
	fields["is_set"] = s.IsSet
	return json.Marshal(fields)
}

// ProviderResponse is the secrets status of a single provider.
type ProviderResponse struct {
	Name         *string                 `json:"name,omitempty" yaml:"name,omitempty"`
	SecretStatus map[string]SecretStatus `json:"secret_status,omitempty" yaml:"secret_status,omitempty"`
}

// DisplayName returns the provider name, or the unknown-provider default.
func (r ProviderResponse) DisplayName() string {
	if r.Name == nil || *r.Name == "" {
		return constants.UnknownProviderName
	}
	return *r.Name
}

// IsActive reports whether at least one of the provider's keys is set.
// A response without secret_status is never active.
func (r ProviderResponse) IsActive() bool {
	for _, status := range r.SecretStatus {
		if status.IsSet {
			return true
		}
	}
	return false
}

// SecretsStatus maps provider ids to their secrets status.
type SecretsStatus map[string]ProviderResponse

type secretsRequest struct {
	Providers []string `json:"providers"`
}
