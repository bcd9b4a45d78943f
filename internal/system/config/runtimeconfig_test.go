/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) SetupTest() {
	ResetStormRuntime()
}

func (suite *RuntimeConfigTestSuite) TearDownTest() {
	ResetStormRuntime()
}

func (suite *RuntimeConfigTestSuite) TestInitializeAndGet() {
	cfg := &Config{
		Server: ServerConfig{Hostname: "localhost", Port: 8095},
	}
	err := InitializeStormRuntime("/opt/storm", cfg)
	assert.NoError(suite.T(), err)

	runtime := GetStormRuntime()
	assert.Equal(suite.T(), "/opt/storm", runtime.StormHome)
	assert.Equal(suite.T(), 8095, runtime.Config.Server.Port)
}

func (suite *RuntimeConfigTestSuite) TestInitializeIsIdempotent() {
	err := InitializeStormRuntime("/opt/storm", &Config{})
	assert.NoError(suite.T(), err)

	// A second initialization must not replace the runtime.
	err = InitializeStormRuntime("/opt/other", &Config{})
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), "/opt/storm", GetStormRuntime().StormHome)
}

func (suite *RuntimeConfigTestSuite) TestGetPanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		GetStormRuntime()
	})
}
