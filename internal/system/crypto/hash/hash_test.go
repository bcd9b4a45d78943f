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

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HashTestSuite struct {
	suite.Suite
}

func TestHashSuite(t *testing.T) {
	suite.Run(t, new(HashTestSuite))
}

func (suite *HashTestSuite) TestHashStringWithSaltIsDeterministic() {
	first, err := HashStringWithSalt("password", "salt")
	assert.NoError(suite.T(), err)

	second, err := HashStringWithSalt("password", "salt")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
	assert.Len(suite.T(), first, 64)
}

func (suite *HashTestSuite) TestHashStringWithSaltDiffersBySalt() {
	first, err := HashStringWithSalt("password", "salt1")
	assert.NoError(suite.T(), err)

	second, err := HashStringWithSalt("password", "salt2")
	assert.NoError(suite.T(), err)

	assert.NotEqual(suite.T(), first, second)
}

func (suite *HashTestSuite) TestVerifyStringWithSalt() {
	expected, err := HashStringWithSalt("password", "salt")
	assert.NoError(suite.T(), err)

	ok, err := VerifyStringWithSalt("password", "salt", expected)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ok)

	ok, err = VerifyStringWithSalt("wrong", "salt", expected)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}

func (suite *HashTestSuite) TestGenerateSalt() {
	first, err := GenerateSalt()
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), first)

	second, err := GenerateSalt()
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), first, second)
}
