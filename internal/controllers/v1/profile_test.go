package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetProfile() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(strings.HasSuffix(response.Data.Email, "@example.com"))
	suite.Assert().Equal("http://example.com/v1/dashboard", response.Data.Links.Dashboard)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	recorder := suite.request(http.MethodPatch, "http://example.com/v1/profile", map[string]any{
		"displayName": " Jane ",
		"avatarUrl":   "https://example.com/avatars/jane.png",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Jane", response.Data.DisplayName)
	suite.Assert().Equal("https://example.com/avatars/jane.png", response.Data.AvatarURL)

	// Fields that are not sent are kept
	recorder = suite.request(http.MethodPatch, "http://example.com/v1/profile", map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Jane", response.Data.DisplayName)
}

func (suite *TestSuiteStandard) TestUpdateProfileFails() {
	tests := []struct {
		name string
		body any
	}{
		{"Invalid avatar", map[string]any{"avatarUrl": "not a url"}},
		{"Display name too long", map[string]any{"displayName": strings.Repeat("a", 101)}},
		{"Broken JSON", `{"displayName": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, "http://example.com/v1/profile", tt.body, suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, &recorder))
		})
	}
}
