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

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestGetLoggerReturnsSingleton() {
	first := GetLogger()
	second := GetLogger()

	assert.NotNil(suite.T(), first)
	assert.Same(suite.T(), first, second)
}

func (suite *LogTestSuite) TestWithReturnsNewLogger() {
	base := GetLogger()
	scoped := base.With(String(LoggerKeyComponentName, "TestComponent"))

	assert.NotNil(suite.T(), scoped)
	assert.NotSame(suite.T(), base, scoped)
}

func (suite *LogTestSuite) TestMaskString() {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "EmptyString",
			input:    "",
			expected: "",
		},
		{
			name:     "ShortString",
			input:    "abc",
			expected: "***",
		},
		{
			name:     "TypicalUsername",
			input:    "alice",
			expected: "a***e",
		},
		{
			name:     "EmailAddress",
			input:    "user@example.com",
			expected: "u**************m",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, MaskString(tc.input))
		})
	}
}

func (suite *LogTestSuite) TestFieldHelpers() {
	assert.Equal(suite.T(), Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(suite.T(), Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(suite.T(), Field{Key: "b", Value: true}, Bool("b", true))

	err := assert.AnError
	assert.Equal(suite.T(), Field{Key: "error", Value: err}, Error(err))
}
