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

import "sync"

// StormRuntime holds the runtime configuration for the Storm server.
type StormRuntime struct {
	StormHome string `yaml:"storm_home"`
	Config    Config `yaml:"config"`
}

var (
	runtimeConfig *StormRuntime
	once          sync.Once
)

// InitializeStormRuntime initializes the StormRuntime configuration.
func InitializeStormRuntime(stormHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &StormRuntime{
			StormHome: stormHome,
			Config:    *config,
		}
	})

	return nil
}

// GetStormRuntime returns the StormRuntime configuration.
func GetStormRuntime() *StormRuntime {
	if runtimeConfig == nil {
		panic("StormRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetStormRuntime resets the StormRuntime.
// This should only be used in tests to reset the singleton state.
func ResetStormRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
