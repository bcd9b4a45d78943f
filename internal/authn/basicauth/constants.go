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

package basicauth

const (
	// AuthenticatorName is the registered name of the authenticator.
	AuthenticatorName = "BasicAuthenticator"
	// AuthenticatorFriendlyName is the display name shown on login pages.
	AuthenticatorFriendlyName = "Username & Password"

	localAuthenticatorType = "LOCAL"

	loggerComponentName = "BasicAuthenticator"
)

// Request parameter names recognized by the authenticator.
const (
	UsernameParam       = "username"
	PasswordParam       = "password"
	RememberMeParam     = "chkRemember"
	SessionDataKeyParam = "sessionDataKey"
)

const (
	// passwordProperty stashes the submitted password between the process
	// and initiate turns of a retry loop.
	passwordProperty = "PASSWORD_PROPERTY"

	// runtimeParamUsername is the per-step parameter carrying a username
	// collected by a preceding identifier step.
	runtimeParamUsername = "username"

	inputTypeParam           = "inputType"
	inputTypeIdentifierFirst = "idf"

	rememberMeOn = "on"
)

// Query string fragments appended to the login, retry and recovery redirects.
const (
	retryFailureFragment        = "&authFailure=true&authFailureMsg=login.fail.message"
	tenantMismatchFragment      = "&authFailure=true&authFailureMsg=user.tenant.domain.mismatch.message"
	confirmationPendingFragment = "&authFailure=true&authFailureMsg=account.confirmation.pending"
	resetPendingFragment        = "&authFailure=true&authFailureMsg=password.reset.pending"

	failedUsernameParam    = "&failedUsername="
	errorCodeParam         = "&errorCode="
	authenticatorsParam    = "&authenticators="
	remainingAttemptsParam = "&remainingAttempts="
	lockedReasonParam      = "&lockedReason="

	usernameQueryParam     = "&username="
	tenantDomainQueryParam = "&tenantdomain="
	confirmationQueryParam = "&confirmation="

	captchaEnabledParam = "&reCaptcha=true"
	captchaKeyParam     = "&reCaptchaKey="
	captchaAPIParam     = "&reCaptchaAPI="
)

// recaptchaAlwaysEnableProperty is the governance connector property that
// forces captcha on every basic login attempt for a tenant.
const recaptchaAlwaysEnableProperty = "sso.login.recaptcha.always.enable"
