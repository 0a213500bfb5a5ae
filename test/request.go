package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/auth"
	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/internal/router"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Auth is shared by all requests so that revoked tokens stay revoked
// across requests.
var Auth = auth.NewService([]byte("pocketbook-test-secret"), time.Hour, session.NewBroker())

// Today is the date handlers use as the current date in tests.
var Today = types.NewDate(2024, 3, 15)

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	// If the body is a string, convert it to bytes
	if reflect.TypeOf(body).Kind() == reflect.String {
		byteBuffer = bytes.NewBufferString(body.(string))
	} else {
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		assert.FailNow(t, "environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		assert.FailNow(t, "environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized")
	}
	router.AttachRoutes(v1.Controller{
		Auth:  Auth,
		Today: func() types.Date { return Today },
	}, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// Authorize registers a new principal and signs it in. The returned headers
// authenticate requests as this principal.
func Authorize(t *testing.T) map[string]string {
	email := fmt.Sprintf("%s@example.com", uuid.New())
	credentials := map[string]string{
		"email":    email,
		"password": "correct-horse",
	}

	recorder := Request(t, http.MethodPost, "http://example.com/v1/auth/register", credentials)
	AssertHTTPStatus(t, &recorder, http.StatusCreated)

	recorder = Request(t, http.MethodPost, "http://example.com/v1/auth/login", credentials)
	AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response struct {
		Data auth.Token `json:"data"`
	}
	DecodeResponse(t, &recorder, &response)

	return map[string]string{"Authorization": "Bearer " + response.Data.Token}
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an HTTP response.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) string {
	var response struct {
		Error string `json:"error"`
	}
	DecodeResponse(t, r, &response)

	return response.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
