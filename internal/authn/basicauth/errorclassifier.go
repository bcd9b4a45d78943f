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

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/asgardeo/storm/internal/authn/utils"
	identitymodel "github.com/asgardeo/storm/internal/identity/model"
)

// redirectTarget identifies the page a failed attempt is redirected to.
type redirectTarget int

const (
	targetLoginPage redirectTarget = iota
	targetRetryPage
	targetRecoveryEndpoint
)

// classifierInput is the full failure state of the previous attempt, as seen
// at the start of an initiate turn.
type classifierInput struct {
	// ErrorCode is the store's failure code, possibly with an embedded
	// secondary reason after a colon.
	ErrorCode           string
	MaxLoginAttempts    int
	FailedLoginAttempts int

	// ShowFailureReason controls whether error details are disclosed to the
	// login page or collapsed into a generic retry message.
	ShowFailureReason bool

	// Username is the username submitted on the failed attempt.
	Username string
	// Password is the credential stashed by the failed attempt. The forced
	// reset branch forwards it as the recovery confirmation code.
	Password string
	// DomainHint is the user store domain recorded during the failed
	// verification, if any.
	DomainHint string
	// RetryFragment is the generic retry message fragment derived from the
	// session state before classification.
	RetryFragment string
}

// classification is the redirect decision for one failed attempt.
type classification struct {
	Target redirectTarget
	// QuerySuffix is appended verbatim after the context query parameters.
	QuerySuffix string
}

type classificationRule struct {
	name    string
	matches func(in classifierInput) bool
	build   func(in classifierInput) classification
}

// classificationRules map failure codes to redirect decisions. Order matters:
// the first matching rule wins, and the generic rule at the end of the table
// catches every code the earlier rules do not name.
var classificationRules = []classificationRule{
	{
		name: "accountNotConfirmed",
		matches: func(in classifierInput) bool {
			return in.ErrorCode == identitymodel.ErrorCodeAccountNotConfirmed
		},
		build: func(in classifierInput) classification {
			username := utils.AddDomainToName(in.Username, in.DomainHint)
			return classification{
				Target: targetLoginPage,
				QuerySuffix: failedUsernameParam + url.QueryEscape(username) +
					errorCodeParam + in.ErrorCode +
					authenticatorsFragment() + confirmationPendingFragment,
			}
		},
	},
	{
		name: "forcedResetViaEmailLink",
		matches: func(in classifierInput) bool {
			return in.ErrorCode == identitymodel.ErrorCodeForcedResetViaEmailLink
		},
		build: func(in classifierInput) classification {
			return classification{
				Target: targetLoginPage,
				QuerySuffix: failedUsernameParam + url.QueryEscape(in.Username) +
					errorCodeParam + in.ErrorCode +
					authenticatorsFragment() + resetPendingFragment,
			}
		},
	},
	{
		name: "forcedResetViaOTP",
		matches: func(in classifierInput) bool {
			return in.ErrorCode == identitymodel.ErrorCodeForcedResetViaOTP
		},
		build: func(in classifierInput) classification {
			return classification{
				Target: targetRecoveryEndpoint,
				QuerySuffix: usernameQueryParam + url.QueryEscape(in.Username) +
					tenantDomainQueryParam + url.QueryEscape(utils.GetTenantDomain(in.Username)) +
					confirmationQueryParam + url.QueryEscape(in.Password),
			}
		},
	},
	{
		// Every remaining code collapses into the generic retry message when
		// failure reasons are not disclosed.
		name: "hiddenFailureReason",
		matches: func(in classifierInput) bool {
			return !in.ShowFailureReason
		},
		build: func(in classifierInput) classification {
			return classification{
				Target:      targetLoginPage,
				QuerySuffix: authenticatorsFragment() + in.RetryFragment,
			}
		},
	},
	{
		name: "invalidCredential",
		matches: func(in classifierInput) bool {
			return baseErrorCode(in.ErrorCode) == identitymodel.ErrorCodeInvalidCredential
		},
		build: func(in classifierInput) classification {
			code, _ := splitErrorCode(in.ErrorCode)
			return classification{
				Target: targetLoginPage,
				QuerySuffix: authenticatorsFragment() + in.RetryFragment +
					errorCodeParam + code +
					failedUsernameParam + url.QueryEscape(in.Username) +
					remainingAttemptsParam + strconv.Itoa(in.remainingAttempts()),
			}
		},
	},
	{
		name: "userIsLocked",
		matches: func(in classifierInput) bool {
			return baseErrorCode(in.ErrorCode) == identitymodel.ErrorCodeUserIsLocked
		},
		build: func(in classifierInput) classification {
			code, reason := splitErrorCode(in.ErrorCode)
			suffix := errorCodeParam + code
			if reason != "" {
				suffix += lockedReasonParam + reason
			}
			suffix += failedUsernameParam + url.QueryEscape(in.Username)
			if in.remainingAttempts() == 0 {
				suffix += remainingAttemptsParam + "0"
			}
			return classification{Target: targetRetryPage, QuerySuffix: suffix}
		},
	},
	{
		name: "otpMismatch",
		matches: func(in classifierInput) bool {
			return baseErrorCode(in.ErrorCode) == identitymodel.ErrorCodeOTPMismatch
		},
		build: func(in classifierInput) classification {
			code, _ := splitErrorCode(in.ErrorCode)
			return classification{
				Target: targetLoginPage,
				QuerySuffix: failedUsernameParam + url.QueryEscape(in.Username) +
					errorCodeParam + code +
					authenticatorsFragment() + retryFailureFragment,
			}
		},
	},
	{
		// User-does-not-exist, account-disabled and any unrecognized code
		// share the detailed generic shape.
		name:    "detailedFailure",
		matches: func(in classifierInput) bool { return true },
		build: func(in classifierInput) classification {
			code, _ := splitErrorCode(in.ErrorCode)
			return classification{
				Target: targetLoginPage,
				QuerySuffix: authenticatorsFragment() + in.RetryFragment +
					errorCodeParam + code +
					failedUsernameParam + url.QueryEscape(in.Username),
			}
		},
	},
}

// classifyError resolves the redirect decision for a failed attempt.
func classifyError(in classifierInput) classification {
	for _, rule := range classificationRules {
		if rule.matches(in) {
			return rule.build(in)
		}
	}
	// Unreachable: the last rule matches everything.
	return classification{
		Target:      targetLoginPage,
		QuerySuffix: authenticatorsFragment() + in.RetryFragment,
	}
}

func (in classifierInput) remainingAttempts() int {
	return in.MaxLoginAttempts - in.FailedLoginAttempts
}

// authenticatorsFragment advertises this authenticator on the redirect so the
// login page renders the matching form.
func authenticatorsFragment() string {
	return authenticatorsParam + AuthenticatorName + ":" + localAuthenticatorType
}

// splitErrorCode separates a failure code from its embedded secondary reason.
func splitErrorCode(errorCode string) (code, reason string) {
	if idx := strings.Index(errorCode, identitymodel.ErrorCodeReasonSeparator); idx >= 0 {
		return errorCode[:idx], errorCode[idx+1:]
	}
	return errorCode, ""
}

func baseErrorCode(errorCode string) string {
	code, _ := splitErrorCode(errorCode)
	return code
}
