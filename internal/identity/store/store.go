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

// Package store provides the persistence operations of the identity store.
package store

import (
	"fmt"
	"strconv"

	"github.com/asgardeo/storm/internal/identity/model"
	"github.com/asgardeo/storm/internal/system/database"
)

var (
	// QueryGetTenantByDomain is the query to resolve a tenant by its domain.
	QueryGetTenantByDomain = database.DBQuery{
		ID:    "STQ-IDN_MGT-01",
		Query: "SELECT TENANT_ID, TENANT_DOMAIN FROM TENANT WHERE TENANT_DOMAIN = $1",
	}
	// QueryGetUserForAuthentication is the query to load the credential and account state of a user.
	QueryGetUserForAuthentication = database.DBQuery{
		ID: "STQ-IDN_MGT-02",
		Query: "SELECT USERNAME, CREDENTIAL, SALT, USER_STORE_DOMAIN, ACCOUNT_LOCK, ACCOUNT_DISABLE, " +
			"CONFIRMATION_PENDING, LOCKED_REASON, FAILED_ATTEMPTS, MAX_FAILED_ATTEMPTS " +
			"FROM TENANT_USER WHERE TENANT_ID = $1 AND USERNAME = $2",
	}
	// QueryUpdateFailedAttempts is the query to record the failed login attempt count of a user.
	QueryUpdateFailedAttempts = database.DBQuery{
		ID:    "STQ-IDN_MGT-03",
		Query: "UPDATE TENANT_USER SET FAILED_ATTEMPTS = $3 WHERE TENANT_ID = $1 AND USERNAME = $2",
	}
	// QueryGetUserClaimValue is the query to read a claim value of a user.
	QueryGetUserClaimValue = database.DBQuery{
		ID:    "STQ-IDN_MGT-04",
		Query: "SELECT CLAIM_VALUE FROM USER_CLAIM WHERE TENANT_ID = $1 AND USERNAME = $2 AND CLAIM_URI = $3",
	}
	// QueryGetUserStoreProperty is the query to read a user store configuration property.
	QueryGetUserStoreProperty = database.DBQuery{
		ID: "STQ-IDN_MGT-05",
		Query: "SELECT PROPERTY_VALUE FROM USER_STORE_PROPERTY " +
			"WHERE TENANT_ID = $1 AND USER_STORE_DOMAIN = $2 AND PROPERTY_NAME = $3",
	}
)

// UserRecord holds the stored credential and account state of a user.
type UserRecord struct {
	Username            string
	Credential          string
	Salt                string
	UserStoreDomain     string
	AccountLocked       bool
	AccountDisabled     bool
	ConfirmationPending bool
	LockedReason        string
	FailedAttempts      int
	MaxFailedAttempts   int
}

// IdentityStore provides access to the tenant and user tables of the identity database.
type IdentityStore struct {
	client database.DBClientInterface
}

// NewIdentityStore creates a new identity store backed by the given database client.
// When client is nil, the identity datasource client from the provider is used.
func NewIdentityStore(client database.DBClientInterface) (*IdentityStore, error) {
	if client == nil {
		dbClient, err := database.GetDBProvider().GetDBClient(database.DBNameIdentity)
		if err != nil {
			return nil, fmt.Errorf("failed to get identity database client: %w", err)
		}
		client = dbClient
	}
	return &IdentityStore{client: client}, nil
}

// GetTenantByDomain returns the tenant for the given domain, or nil when not found.
func (s *IdentityStore) GetTenantByDomain(domain string) (*model.Tenant, error) {
	results, err := s.client.Query(QueryGetTenantByDomain, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant for domain %s: %w", domain, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	row := results[0]
	return &model.Tenant{
		ID:     stringValue(row["tenant_id"]),
		Domain: stringValue(row["tenant_domain"]),
	}, nil
}

// GetUserForAuthentication returns the stored credential and account state of the
// given user, or nil when the user does not exist.
func (s *IdentityStore) GetUserForAuthentication(tenantID, username string) (*UserRecord, error) {
	results, err := s.client.Query(QueryGetUserForAuthentication, tenantID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", username, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	row := results[0]
	return &UserRecord{
		Username:            stringValue(row["username"]),
		Credential:          stringValue(row["credential"]),
		Salt:                stringValue(row["salt"]),
		UserStoreDomain:     stringValue(row["user_store_domain"]),
		AccountLocked:       boolValue(row["account_lock"]),
		AccountDisabled:     boolValue(row["account_disable"]),
		ConfirmationPending: boolValue(row["confirmation_pending"]),
		LockedReason:        stringValue(row["locked_reason"]),
		FailedAttempts:      intValue(row["failed_attempts"]),
		MaxFailedAttempts:   intValue(row["max_failed_attempts"]),
	}, nil
}

// UpdateFailedAttempts records the failed login attempt count of the given user.
func (s *IdentityStore) UpdateFailedAttempts(tenantID, username string, attempts int) error {
	_, err := s.client.Execute(QueryUpdateFailedAttempts, tenantID, username, attempts)
	if err != nil {
		return fmt.Errorf("failed to update failed attempts for user %s: %w", username, err)
	}
	return nil
}

// GetUserClaimValue returns the value of the given claim URI for the user, or an
// empty string when no value is stored.
func (s *IdentityStore) GetUserClaimValue(tenantID, username, claimURI string) (string, error) {
	results, err := s.client.Query(QueryGetUserClaimValue, tenantID, username, claimURI)
	if err != nil {
		return "", fmt.Errorf("failed to query claim %s for user %s: %w", claimURI, username, err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return stringValue(results[0]["claim_value"]), nil
}

// GetUserStoreProperty returns the value of a user store configuration property,
// or an empty string when the property is not set.
func (s *IdentityStore) GetUserStoreProperty(tenantID, userStoreDomain, propertyName string) (string, error) {
	results, err := s.client.Query(QueryGetUserStoreProperty, tenantID, userStoreDomain, propertyName)
	if err != nil {
		return "", fmt.Errorf("failed to query user store property %s: %w", propertyName, err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return stringValue(results[0]["property_value"]), nil
}

// stringValue converts a raw database value to a string.
func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// intValue converts a raw database value to an int.
func intValue(value interface{}) int {
	switch v := value.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case []byte:
		parsed, err := strconv.Atoi(string(v))
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// boolValue converts a raw database value to a bool.
func boolValue(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case []byte:
		return string(v) == "1" || string(v) == "true"
	case string:
		return v == "1" || v == "true"
	default:
		return false
	}
}
