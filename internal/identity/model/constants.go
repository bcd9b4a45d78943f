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

package model

// Result codes reported by the identity store on failed authentication attempts.
const (
	// ErrorCodeInvalidCredential is reported when the password does not match.
	ErrorCodeInvalidCredential = "INVALID_CREDENTIAL"
	// ErrorCodeUserIsLocked is reported when the account is locked.
	ErrorCodeUserIsLocked = "USER_IS_LOCKED"
	// ErrorCodeUserDoesNotExist is reported when no user exists for the username.
	ErrorCodeUserDoesNotExist = "USER_DOES_NOT_EXIST"
	// ErrorCodeAccountDisabled is reported when the account is administratively disabled.
	ErrorCodeAccountDisabled = "ACCOUNT_DISABLED"
	// ErrorCodeAccountNotConfirmed is reported when self-registration confirmation is pending.
	ErrorCodeAccountNotConfirmed = "ACCOUNT_NOT_CONFIRMED"
	// ErrorCodeForcedResetViaEmailLink is reported when an admin forced a password
	// reset delivered by email link.
	ErrorCodeForcedResetViaEmailLink = "FORCED_RESET_VIA_EMAIL_LINK"
	// ErrorCodeForcedResetViaOTP is reported when an admin forced a password reset
	// confirmed with a one time code.
	ErrorCodeForcedResetViaOTP = "FORCED_RESET_VIA_OTP"
	// ErrorCodeOTPMismatch is reported when the submitted one time code does not match.
	ErrorCodeOTPMismatch = "OTP_MISMATCH"
)

// ErrorCodeReasonSeparator separates an error code from its embedded secondary reason.
const ErrorCodeReasonSeparator = ":"
