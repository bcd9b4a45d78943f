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

// Package authn defines the authenticator contract driven by the flow
// orchestrator.
package authn

import (
	"net/http"

	"github.com/asgardeo/storm/internal/authn/model"
)

// AuthenticatorInterface is one authentication factor in a flow. The
// orchestrator drives it through Process, which either completes the factor
// or redirects the user agent for further interaction.
type AuthenticatorInterface interface {
	// GetName returns the registered name of the authenticator.
	GetName() string
	// GetFriendlyName returns the display name of the authenticator.
	GetFriendlyName() string
	// CanHandle reports whether the request carries a credential submission
	// this authenticator understands.
	CanHandle(r *http.Request) bool
	// GetContextIdentifier extracts the flow session identifier from the
	// request, or returns an empty string when none is present.
	GetContextIdentifier(r *http.Request) string
	// RetryAuthenticationEnabled reports whether a failed attempt re-enters
	// the login page instead of terminating the flow.
	RetryAuthenticationEnabled() bool
	// Process runs one turn of the factor against the flow context.
	Process(w http.ResponseWriter, r *http.Request,
		ctx *model.AuthenticationContext) (model.FlowStatus, error)
	// InitiateAuthenticationRequest redirects the user agent to the page
	// that collects this factor's credentials.
	InitiateAuthenticationRequest(w http.ResponseWriter, r *http.Request,
		ctx *model.AuthenticationContext) error
	// ProcessAuthenticationResponse validates the submitted credentials and
	// populates the flow context on success.
	ProcessAuthenticationResponse(w http.ResponseWriter, r *http.Request,
		ctx *model.AuthenticationContext) error
}
