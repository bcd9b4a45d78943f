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

// Package orchestrator drives authentication flows. It owns the per-session
// authentication contexts and runs the authenticator turn by turn until the
// flow completes or fails.
package orchestrator

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/asgardeo/storm/internal/authn"
	"github.com/asgardeo/storm/internal/authn/basicauth"
	authnmodel "github.com/asgardeo/storm/internal/authn/model"
	"github.com/asgardeo/storm/internal/system/error/serviceerror"
	"github.com/asgardeo/storm/internal/system/log"
	"github.com/asgardeo/storm/internal/system/utils"
)

const loggerComponentName = "FlowOrchestrator"

// LogoutParam marks a request as a logout turn.
const LogoutParam = "commonAuthLogout"

// ErrorFlowFailure is the client error returned when a flow terminates
// unsuccessfully. The description stays generic; failure details are logged
// server side only.
var ErrorFlowFailure = serviceerror.ServiceError{
	Code:             "AUTH-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Authentication failed",
	ErrorDescription: "Authentication failed for the flow",
}

// FlowCompletionResponse is the JSON body returned when a flow completes.
type FlowCompletionResponse struct {
	Status            string `json:"status"`
	SessionDataKey    string `json:"sessionDataKey"`
	SubjectIdentifier string `json:"subjectIdentifier,omitempty"`
	TenantDomain      string `json:"tenantDomain,omitempty"`
	RememberMe        bool   `json:"rememberMe,omitempty"`
}

// FlowOrchestrator runs login flows against a single authenticator.
type FlowOrchestrator struct {
	authenticator authn.AuthenticatorInterface
	sessions      *SessionDataStore
}

// NewFlowOrchestrator creates a flow orchestrator. Nil arguments default to
// the basic authenticator and the shared session store.
func NewFlowOrchestrator(authenticator authn.AuthenticatorInterface,
	sessions *SessionDataStore) *FlowOrchestrator {
	if authenticator == nil {
		authenticator = basicauth.NewBasicAuthenticator(nil, nil)
	}
	if sessions == nil {
		sessions = GetSessionDataStore()
	}
	return &FlowOrchestrator{
		authenticator: authenticator,
		sessions:      sessions,
	}
}

// HandleAuthenticationRequest runs one turn of the login flow for the
// incoming request. A request without a session identifier starts a new flow.
func (o *FlowOrchestrator) HandleAuthenticationRequest(w http.ResponseWriter,
	r *http.Request) {
	sessionDataKey := o.authenticator.GetContextIdentifier(r)
	if sessionDataKey == "" {
		sessionDataKey = uuid.New().String()
	}

	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionDataKey, sessionDataKey),
		log.String(log.LoggerKeyAuthenticator, o.authenticator.GetName()))

	ctx, release := o.sessions.Acquire(sessionDataKey)
	defer release()

	ctx.QueryParams = basicauth.SessionDataKeyParam + "=" + sessionDataKey
	if r.FormValue(LogoutParam) == "true" {
		ctx.LogoutRequest = true
	}

	status, err := o.authenticator.Process(w, r, ctx)
	switch status {
	case authnmodel.FlowStatusSuccessCompleted:
		o.sessions.Remove(sessionDataKey)
		o.writeCompletion(w, logger, ctx)
	case authnmodel.FlowStatusFailCompleted:
		o.sessions.Remove(sessionDataKey)
		logger.Error("Authentication flow failed", log.Error(err))
		utils.WriteJSONError(w, ErrorFlowFailure.Code,
			ErrorFlowFailure.ErrorDescription, http.StatusUnauthorized)
	default:
		// The authenticator has redirected the user agent; the flow
		// continues on the next request.
		logger.Debug("Authentication flow is awaiting user interaction")
	}
}

func (o *FlowOrchestrator) writeCompletion(w http.ResponseWriter,
	logger *log.Logger, ctx *authnmodel.AuthenticationContext) {
	response := FlowCompletionResponse{
		Status:         string(authnmodel.FlowStatusSuccessCompleted),
		SessionDataKey: ctx.SessionDataKey,
	}
	if ctx.LogoutRequest {
		response.Status = "LOGOUT_COMPLETED"
	} else {
		response.SubjectIdentifier = ctx.SubjectIdentifier
		response.TenantDomain = ctx.TenantDomain
		response.RememberMe = ctx.RememberMe
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to write the flow completion response", log.Error(err))
	}
}
