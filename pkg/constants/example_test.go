package constants_test

import (
	"fmt"
	"net/http"

	"github.com/agentstation/providerkeys/pkg/constants"
)

// Example demonstrates building backend request URLs from the path constants
func Example() {
	base := "http://127.0.0.1:3000"

	fmt.Println(base + constants.ProvidersPath)
	fmt.Println(base + constants.SecretsStatusPath)
	// Output:
	// http://127.0.0.1:3000/agent/providers
	// http://127.0.0.1:3000/secrets/providers
}

// Example_headers demonstrates authenticating a request with the secret header
func Example_headers() {
	req, err := http.NewRequest(http.MethodPost, constants.DefaultAPIURL+constants.SecretsStatusPath, nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set(constants.SecretKeyHeader, "s3cr3t")
	req.Header.Set("Content-Type", constants.ContentTypeJSON)

	fmt.Println(req.Header.Get("X-Secret-Key"))
	fmt.Println(req.Header.Get("Content-Type"))
	// Output:
	// s3cr3t
	// application/json
}
