package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response status.
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "wrong status code")
}

// AssertJSONResponse decodes the response body into v, failing the test on
// unreadable or non-JSON bodies.
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "reading response body")

	require.NoError(t, json.Unmarshal(body, v), "response is not valid JSON: %s", string(body))
}

// AssertErrorResponse checks the status plus the plain-text error message
// written by http.Error.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "wrong status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "reading response body")

	assert.Contains(t, string(body), expectedMessage, "unexpected error body")
}
