package providers

// Config supplies the backend location and the secret key.
// Both are looked up on every call, so a changed setting takes effect
// without rebuilding the client.
type Config interface {
	BaseURL() string
	SecretKey() string
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	URL    string
	Secret string
}

// BaseURL implements Config.
func (c StaticConfig) BaseURL() string { return c.URL }

// SecretKey implements Config.
func (c StaticConfig) SecretKey() string { return c.Secret }

// ConfigFunc adapts two lookup functions to Config. A nil function yields "".
type ConfigFunc struct {
	URL    func() string
	Secret func() string
}

// BaseURL implements Config.
func (f ConfigFunc) BaseURL() string {
	if f.URL == nil {
		return ""
	}
	return f.URL()
}

// SecretKey implements Config.
func (f ConfigFunc) SecretKey() string {
	if f.Secret == nil {
		return ""
	}
	return f.Secret()
}
