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

// AuthenticationFailedError is a fatal failure of an authenticator turn, such
// as a tenant or realm resolution failure. The orchestrator decides whether
// the whole flow aborts.
type AuthenticationFailedError struct {
	Message string
	// FailedUser is the possibly domain-qualified user identity carried for audit.
	FailedUser string
	Cause      error
}

func (e *AuthenticationFailedError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthenticationFailedError) Unwrap() error {
	return e.Cause
}

// InvalidCredentialsError is a retryable credential failure. It carries the
// store's failure classification, which the orchestrator threads back into the
// next initiate turn as the prior error signal.
type InvalidCredentialsError struct {
	Message string
	// FailedUser is the possibly domain-qualified user identity carried for audit.
	FailedUser   string
	ErrorContext *ErrorContext
}

func (e *InvalidCredentialsError) Error() string {
	return e.Message
}

// NewAuthenticationFailedError creates a fatal authentication error.
func NewAuthenticationFailedError(message, failedUser string, cause error) *AuthenticationFailedError {
	return &AuthenticationFailedError{
		Message:    message,
		FailedUser: failedUser,
		Cause:      cause,
	}
}

// NewInvalidCredentialsError creates a retryable credential failure.
func NewInvalidCredentialsError(message, failedUser string, errorContext *ErrorContext) *InvalidCredentialsError {
	return &InvalidCredentialsError{
		Message:      message,
		FailedUser:   failedUser,
		ErrorContext: errorContext,
	}
}
