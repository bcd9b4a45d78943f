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

// Package basicauth implements the local username and password authenticator.
// It runs a two-phase flow: initiate redirects the user agent to the login
// page with the outcome of any previous attempt encoded in the query string,
// and process verifies the submitted credentials against the tenant realm.
package basicauth

import (
	"errors"
	"net/http"

	authnmodel "github.com/asgardeo/storm/internal/authn/model"
	"github.com/asgardeo/storm/internal/authn/utils"
	"github.com/asgardeo/storm/internal/governance"
	"github.com/asgardeo/storm/internal/identity/service"
	"github.com/asgardeo/storm/internal/system/config"
	"github.com/asgardeo/storm/internal/system/log"
)

// BasicAuthenticator is the local username/password authentication factor.
type BasicAuthenticator struct {
	verifier    *CredentialVerifier
	resolver    *UsernameResolver
	captchaGate *CaptchaGate
}

// NewBasicAuthenticator creates a basic authenticator. Nil services default
// to the shared singletons.
func NewBasicAuthenticator(realmService service.RealmServiceInterface,
	governanceService governance.ServiceInterface) *BasicAuthenticator {
	if realmService == nil {
		realmService = service.GetRealmService()
	}
	return &BasicAuthenticator{
		verifier:    NewCredentialVerifier(realmService),
		resolver:    NewUsernameResolver(realmService),
		captchaGate: NewCaptchaGate(governanceService),
	}
}

// GetName returns the registered name of the authenticator.
func (b *BasicAuthenticator) GetName() string {
	return AuthenticatorName
}

// GetFriendlyName returns the display name of the authenticator.
func (b *BasicAuthenticator) GetFriendlyName() string {
	return AuthenticatorFriendlyName
}

// CanHandle reports whether the request carries a username and password
// submission.
func (b *BasicAuthenticator) CanHandle(r *http.Request) bool {
	return r.FormValue(UsernameParam) != "" && r.FormValue(PasswordParam) != ""
}

// GetContextIdentifier extracts the flow session identifier from the request.
func (b *BasicAuthenticator) GetContextIdentifier(r *http.Request) string {
	return r.FormValue(SessionDataKeyParam)
}

// RetryAuthenticationEnabled reports that failed attempts re-enter the login
// page rather than terminating the flow.
func (b *BasicAuthenticator) RetryAuthenticationEnabled() bool {
	return true
}

// Process runs one turn of the factor. A logout turn completes immediately. A
// request without credentials redirects to the login page. A credential
// submission is verified; on a retryable failure the flow loops back through
// initiate with the failure threaded into the redirect.
func (b *BasicAuthenticator) Process(w http.ResponseWriter, r *http.Request,
	ctx *authnmodel.AuthenticationContext) (authnmodel.FlowStatus, error) {
	if ctx.LogoutRequest {
		return authnmodel.FlowStatusSuccessCompleted, nil
	}

	if !b.CanHandle(r) {
		if err := b.InitiateAuthenticationRequest(w, r, ctx); err != nil {
			return authnmodel.FlowStatusFailCompleted, err
		}
		return authnmodel.FlowStatusIncomplete, nil
	}

	err := b.ProcessAuthenticationResponse(w, r, ctx)
	if err == nil {
		return authnmodel.FlowStatusSuccessCompleted, nil
	}

	var invalidCredentials *authnmodel.InvalidCredentialsError
	if errors.As(err, &invalidCredentials) && b.RetryAuthenticationEnabled() {
		ctx.IsRetrying = true
		ctx.SetPriorError(invalidCredentials.ErrorContext)
		if initiateErr := b.InitiateAuthenticationRequest(w, r, ctx); initiateErr != nil {
			return authnmodel.FlowStatusFailCompleted, initiateErr
		}
		return authnmodel.FlowStatusIncomplete, nil
	}
	return authnmodel.FlowStatusFailCompleted, err
}

// InitiateAuthenticationRequest redirects the user agent to the login, retry
// or recovery page. The outcome of the previous attempt, consumed exactly
// once from the flow context, decides the target page and the query string
// appended to it.
func (b *BasicAuthenticator) InitiateAuthenticationRequest(w http.ResponseWriter,
	r *http.Request, ctx *authnmodel.AuthenticationContext) error {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionDataKey, ctx.SessionDataKey))

	showFailureReason := config.GetStormRuntime().Config.BasicAuth.ShowAuthFailureReason
	if logger.IsDebugEnabled() {
		logger.Debug("Initiating the basic authentication request",
			log.Bool("showAuthFailureReason", showFailureReason))
	}

	queryParams := ctx.QueryParams
	stashedPassword, _ := ctx.Property(passwordProperty).(string)
	ctx.RemoveProperty(passwordProperty)

	if knownUsername := ctx.RuntimeParams[runtimeParamUsername]; knownUsername != "" {
		queryParams += "&" + inputTypeParam + "=" + inputTypeIdentifierFirst
		ctx.SetEndpointParam(runtimeParamUsername, knownUsername)
	}

	retryFragment := ""
	if ctx.IsRetrying {
		retryFragment = retryFailureFragment
	}
	if ctx.TenantDomainMismatch {
		retryFragment = tenantMismatchFragment
		ctx.TenantDomainMismatch = false
	}

	errorContext := ctx.ConsumePriorError()
	domainHint := ctx.ConsumeDomainHint()
	username := r.FormValue(UsernameParam)

	var result classification
	if errorContext != nil && errorContext.ErrorCode != "" {
		logger.Debug("Prior failure found in the authentication context",
			log.String("errorCode", errorContext.ErrorCode))
		result = classifyError(classifierInput{
			ErrorCode:           errorContext.ErrorCode,
			MaxLoginAttempts:    errorContext.MaxLoginAttempts,
			FailedLoginAttempts: errorContext.FailedLoginAttempts,
			ShowFailureReason:   showFailureReason,
			Username:            username,
			Password:            stashedPassword,
			DomainHint:          domainHint,
			RetryFragment:       retryFragment,
		})
	} else {
		logger.Debug("No prior failure found in the authentication context")
		result = classification{
			Target:      targetLoginPage,
			QuerySuffix: authenticatorsFragment() + retryFragment,
		}
	}

	baseURL, err := redirectBaseURL(result.Target)
	if err != nil {
		return authnmodel.NewAuthenticationFailedError(
			"failed to build the login redirect URL", username, err)
	}

	tenantDomain := ctx.TenantDomain
	if tenantDomain == "" {
		tenantDomain = utils.DefaultTenantDomain
	}

	redirectURL := baseURL + "?" + queryParams + result.QuerySuffix +
		b.captchaGate.Fragment(tenantDomain)
	http.Redirect(w, r, redirectURL, http.StatusFound)
	return nil
}

// ProcessAuthenticationResponse verifies the submitted credentials and, on
// success, populates the subject identifier, tenant domain and remember-me
// flag on the flow context.
func (b *BasicAuthenticator) ProcessAuthenticationResponse(w http.ResponseWriter,
	r *http.Request, ctx *authnmodel.AuthenticationContext) error {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeySessionDataKey, ctx.SessionDataKey))

	username := r.FormValue(UsernameParam)
	password := r.FormValue(PasswordParam)

	if knownUsername := ctx.RuntimeParams[runtimeParamUsername]; knownUsername != "" &&
		knownUsername != username {
		logger.Debug("Submitted username does not match the identifier step",
			log.String("username", log.MaskString(username)))
		return authnmodel.NewInvalidCredentialsError(
			"credential mismatch for the identified user", username, nil)
	}

	// Stashed for the forced password reset branch of the next initiate turn.
	ctx.SetProperty(passwordProperty, password)
	ctx.ClearDomainHint()

	result, err := b.verifier.Verify(username, password)
	if err != nil {
		return err
	}
	if result.UserStoreDomain != "" {
		ctx.SetDomainHint(result.UserStoreDomain)
	}

	if !result.Authenticated {
		logger.Debug("User authentication failed due to invalid credentials",
			log.String("username", log.MaskString(username)))
		failedUser := utils.AddDomainToName(username, ctx.PeekDomainHint())
		var errorContext *authnmodel.ErrorContext
		if result.Failure != nil {
			errorContext = &authnmodel.ErrorContext{
				ErrorCode:           result.Failure.Code,
				MaxLoginAttempts:    result.Failure.MaxLoginAttempts,
				FailedLoginAttempts: result.Failure.FailedLoginAttempts,
			}
		}
		return authnmodel.NewInvalidCredentialsError(
			"user authentication failed due to invalid credentials",
			failedUser, errorContext)
	}

	ctx.TenantDomain = utils.GetTenantDomain(username)
	subject := utils.AddDomainToName(username, result.UserStoreDomain)
	subject = b.resolver.Resolve(subject, result.UserStoreDomain)
	ctx.SubjectIdentifier = subject

	if r.FormValue(RememberMeParam) == rememberMeOn {
		ctx.RememberMe = true
	}

	logger.Debug("Basic authentication completed for the user",
		log.String("username", log.MaskString(subject)),
		log.String(log.LoggerKeyTenantDomain, ctx.TenantDomain))
	return nil
}

// redirectBaseURL resolves the base URL of a redirect target from the gate
// client configuration.
func redirectBaseURL(target redirectTarget) (string, error) {
	switch target {
	case targetRetryPage:
		return utils.GetRetryPageURL()
	case targetRecoveryEndpoint:
		return utils.GetPasswordRecoveryURL()
	default:
		return utils.GetLoginPageURL()
	}
}
