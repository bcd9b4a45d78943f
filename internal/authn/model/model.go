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

// Package model defines the data structures for authentication.
package model

// FlowStatus is the outcome of a single authenticator turn.
type FlowStatus string

const (
	// FlowStatusIncomplete indicates the flow needs further user interaction.
	FlowStatusIncomplete FlowStatus = "INCOMPLETE"
	// FlowStatusSuccessCompleted indicates the factor completed successfully.
	FlowStatusSuccessCompleted FlowStatus = "SUCCESS_COMPLETED"
	// FlowStatusFailCompleted indicates the factor failed terminally.
	FlowStatusFailCompleted FlowStatus = "FAIL_COMPLETED"
)

// ErrorContext carries the identity store's classification of the previous
// failed attempt into the next initiate turn. It is consumed exactly once.
type ErrorContext struct {
	// ErrorCode may embed a secondary reason after a colon.
	ErrorCode           string
	MaxLoginAttempts    int
	FailedLoginAttempts int
}

// RemainingAttempts returns the login attempts left before lockout.
func (e *ErrorContext) RemainingAttempts() int {
	return e.MaxLoginAttempts - e.FailedLoginAttempts
}

// AuthenticationContext is the per-flow session state shared across the
// initiate and process turns. It is owned by the flow orchestrator, which
// serializes turns for a given session identifier.
type AuthenticationContext struct {
	SessionDataKey string

	IsRetrying           bool
	TenantDomainMismatch bool
	LogoutRequest        bool

	// Properties stashes transient values between turns.
	Properties map[string]interface{}

	// RuntimeParams carries per-step parameters from the orchestrator,
	// such as a username collected by a preceding identifier step.
	RuntimeParams map[string]string

	// QueryParams is the context-id included query string forwarded to the
	// login page.
	QueryParams string

	// EndpointParams carries values forwarded to the login endpoint alongside
	// the redirect.
	EndpointParams map[string]string

	RememberMe        bool
	SubjectIdentifier string
	TenantDomain      string

	// priorError and domainHint are read-once state threaded from a failed
	// verification into the next initiate turn.
	priorError *ErrorContext
	domainHint string
}

// NewAuthenticationContext creates a new authentication context for the given
// session identifier.
func NewAuthenticationContext(sessionDataKey string) *AuthenticationContext {
	return &AuthenticationContext{
		SessionDataKey: sessionDataKey,
		Properties:     make(map[string]interface{}),
		EndpointParams: make(map[string]string),
	}
}

// Property returns the stashed property with the given name.
func (ctx *AuthenticationContext) Property(name string) interface{} {
	if ctx.Properties == nil {
		return nil
	}
	return ctx.Properties[name]
}

// SetProperty stashes a property on the context.
func (ctx *AuthenticationContext) SetProperty(name string, value interface{}) {
	if ctx.Properties == nil {
		ctx.Properties = make(map[string]interface{})
	}
	ctx.Properties[name] = value
}

// RemoveProperty removes the stashed property with the given name.
func (ctx *AuthenticationContext) RemoveProperty(name string) {
	if ctx.Properties == nil {
		return
	}
	delete(ctx.Properties, name)
}

// SetEndpointParam records a value to forward to the login endpoint.
func (ctx *AuthenticationContext) SetEndpointParam(name, value string) {
	if ctx.EndpointParams == nil {
		ctx.EndpointParams = make(map[string]string)
	}
	ctx.EndpointParams[name] = value
}

// SetPriorError records the store's failure classification for the next
// initiate turn.
func (ctx *AuthenticationContext) SetPriorError(errorContext *ErrorContext) {
	ctx.priorError = errorContext
}

// ConsumePriorError returns the pending failure classification and clears it.
// The signal is visible to exactly one initiate turn.
func (ctx *AuthenticationContext) ConsumePriorError() *ErrorContext {
	errorContext := ctx.priorError
	ctx.priorError = nil
	return errorContext
}

// SetDomainHint records the user store domain that resolved the user during
// the last verification.
func (ctx *AuthenticationContext) SetDomainHint(domain string) {
	ctx.domainHint = domain
}

// PeekDomainHint returns the pending domain hint without clearing it.
func (ctx *AuthenticationContext) PeekDomainHint() string {
	return ctx.domainHint
}

// ConsumeDomainHint returns the pending domain hint and clears it.
func (ctx *AuthenticationContext) ConsumeDomainHint() string {
	domain := ctx.domainHint
	ctx.domainHint = ""
	return domain
}

// ClearDomainHint erases any stale domain hint.
func (ctx *AuthenticationContext) ClearDomainHint() {
	ctx.domainHint = ""
}
