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

// Package model defines the data structures of the identity store boundary.
package model

// Tenant represents an isolated namespace of users and identity stores.
type Tenant struct {
	ID     string
	Domain string
}

// StoreFailure carries the identity store's classification of a failed
// authentication attempt. Code may embed a secondary reason after a colon.
type StoreFailure struct {
	Code                string
	MaxLoginAttempts    int
	FailedLoginAttempts int
}

// AuthenticationResult is the outcome of an authenticate call against a realm.
type AuthenticationResult struct {
	Authenticated bool
	// UserStoreDomain is the domain of the sub-store that resolved the user, if any.
	UserStoreDomain string
	// Failure is set when the store classified the failed attempt.
	Failure *StoreFailure
}

// RealmInterface is the tenant-scoped identity store handle.
type RealmInterface interface {
	// Authenticate verifies the given credentials. A false result does not
	// produce an error; store level failures do.
	Authenticate(tenantAwareUsername, password string) (*AuthenticationResult, error)
	// GetClaimValue returns the value of the given claim URI for the user.
	GetClaimValue(tenantAwareUsername, claimURI string) (string, error)
	// IsMultiAttributeEnabled reports whether the given user store domain is
	// configured for multi-valued username attributes.
	IsMultiAttributeEnabled(userStoreDomain string) (bool, error)
}
