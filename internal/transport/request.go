package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/providerkeys/pkg/errors"
	"github.com/agentstation/providerkeys/pkg/logging"
)

// DecodeResponse decodes a JSON response into target and closes the body.
// A non-2xx status yields *errors.RequestError; failureMessage becomes its
// Message, or the HTTP status text when empty.
func DecodeResponse(resp *http.Response, target any, failureMessage string) error {
	log := logging.Default()
	method, endpoint := "", ""
	if resp.Request != nil {
		method = resp.Request.Method
		endpoint = resp.Request.URL.String()
		log = logging.FromContext(resp.Request.Context())
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapTransport(method, endpoint, err)
	}

	if !IsSuccess(resp.StatusCode) {
		reqErr := errors.NewRequestError(method, endpoint, resp.StatusCode, failureMessage)
		reqErr.Body = string(body)
		return reqErr
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}

	return nil
}

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
