/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

func (s *HTTPUtilTestSuite) TestGetURIWithQueryParams() {
	uri, err := GetURIWithQueryParams("https://localhost:9001/login.do",
		map[string]string{"sessionDataKey": "abc 123"})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "https://localhost:9001/login.do?sessionDataKey=abc+123", uri)
}

func (s *HTTPUtilTestSuite) TestGetURIWithQueryParamsPreservesExistingQuery() {
	uri, err := GetURIWithQueryParams("https://localhost:9001/login.do?client=app",
		map[string]string{"sessionDataKey": "abc"})

	assert.NoError(s.T(), err)
	assert.Contains(s.T(), uri, "client=app")
	assert.Contains(s.T(), uri, "sessionDataKey=abc")
}

func (s *HTTPUtilTestSuite) TestWriteJSONError() {
	recorder := httptest.NewRecorder()

	WriteJSONError(recorder, "AUTH-60001", "Authentication failed", http.StatusUnauthorized)

	assert.Equal(s.T(), http.StatusUnauthorized, recorder.Code)
	assert.Equal(s.T(), "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(s.T(), json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(s.T(), "AUTH-60001", body["error"])
	assert.Equal(s.T(), "Authentication failed", body["error_description"])
}
