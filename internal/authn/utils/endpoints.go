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
	"fmt"
	"net/url"

	"github.com/asgardeo/storm/internal/system/config"
)

// GetLoginPageURL returns the base URL of the login page.
func GetLoginPageURL() (string, error) {
	gateClient := config.GetStormRuntime().Config.GateClient
	return buildGateClientURL(gateClient, gateClient.LoginPath)
}

// GetRetryPageURL returns the base URL of the authentication retry page.
func GetRetryPageURL() (string, error) {
	gateClient := config.GetStormRuntime().Config.GateClient
	return buildGateClientURL(gateClient, gateClient.RetryPath)
}

// GetPasswordRecoveryURL returns the base URL of the password recovery confirmation endpoint.
func GetPasswordRecoveryURL() (string, error) {
	gateClient := config.GetStormRuntime().Config.GateClient
	return buildGateClientURL(gateClient, gateClient.RecoveryPath)
}

// buildGateClientURL builds an absolute URL on the gate client for the given path.
func buildGateClientURL(gateClient config.GateClientConfig, path string) (string, error) {
	if gateClient.Hostname == "" {
		return "", fmt.Errorf("gate client hostname is not configured")
	}

	scheme := gateClient.Scheme
	if scheme == "" {
		scheme = "https"
	}

	host := gateClient.Hostname
	if gateClient.Port != 0 {
		host = fmt.Sprintf("%s:%d", gateClient.Hostname, gateClient.Port)
	}

	pageURL := &url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
	}
	return pageURL.String(), nil
}
