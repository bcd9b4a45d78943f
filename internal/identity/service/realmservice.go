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

// Package service implements the tenant realm resolution and the default SQL backed realm.
package service

import (
	"fmt"
	"sync"

	"github.com/asgardeo/storm/internal/authn/utils"
	"github.com/asgardeo/storm/internal/identity/model"
	"github.com/asgardeo/storm/internal/identity/store"
	"github.com/asgardeo/storm/internal/system/crypto/hash"
	"github.com/asgardeo/storm/internal/system/log"
)

const loggerComponentName = "RealmService"

// MultipleAttributeEnableProperty is the user store property controlling
// multi-valued username attribute resolution.
const MultipleAttributeEnableProperty = "MultipleAttributeEnable"

// RealmServiceInterface resolves tenants and hands out tenant-scoped realms.
type RealmServiceInterface interface {
	// ResolveTenant returns the tenant id owning the given username.
	ResolveTenant(username string) (string, error)
	// GetRealm returns the identity store handle of the given tenant. A nil
	// realm without an error means no realm exists for the tenant.
	GetRealm(tenantID string) (model.RealmInterface, error)
}

// realmService is the default implementation of RealmServiceInterface.
type realmService struct {
	store *store.IdentityStore
}

var (
	instance RealmServiceInterface
	once     sync.Once
)

// GetRealmService returns a singleton instance of the realm service.
func GetRealmService() RealmServiceInterface {
	once.Do(func() {
		identityStore, err := store.NewIdentityStore(nil)
		if err != nil {
			log.GetLogger().Fatal("Failed to initialize the identity store", log.Error(err))
		}
		instance = &realmService{store: identityStore}
	})
	return instance
}

// NewRealmService creates a realm service backed by the given identity store.
func NewRealmService(identityStore *store.IdentityStore) RealmServiceInterface {
	return &realmService{store: identityStore}
}

// ResolveTenant returns the tenant id owning the given username.
func (r *realmService) ResolveTenant(username string) (string, error) {
	tenantDomain := utils.GetTenantDomain(username)
	tenant, err := r.store.GetTenantByDomain(tenantDomain)
	if err != nil {
		return "", fmt.Errorf("failed to resolve tenant for domain %s: %w", tenantDomain, err)
	}
	if tenant == nil {
		return "", fmt.Errorf("no tenant found for domain %s", tenantDomain)
	}
	return tenant.ID, nil
}

// GetRealm returns the identity store handle of the given tenant.
func (r *realmService) GetRealm(tenantID string) (model.RealmInterface, error) {
	if tenantID == "" {
		return nil, nil
	}
	return &userRealm{tenantID: tenantID, store: r.store}, nil
}

// userRealm is the SQL backed realm of a single tenant.
type userRealm struct {
	tenantID string
	store    *store.IdentityStore
}

// Authenticate verifies the given credentials against the tenant's user table.
func (u *userRealm) Authenticate(tenantAwareUsername, password string) (*model.AuthenticationResult, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	user, err := u.store.GetUserForAuthentication(u.tenantID, tenantAwareUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &model.AuthenticationResult{
			Authenticated: false,
			Failure:       &model.StoreFailure{Code: model.ErrorCodeUserDoesNotExist},
		}, nil
	}

	// Account state gates apply before the credential check.
	if user.AccountLocked {
		code := model.ErrorCodeUserIsLocked
		if user.LockedReason != "" {
			code = code + model.ErrorCodeReasonSeparator + user.LockedReason
		}
		return &model.AuthenticationResult{
			Authenticated:   false,
			UserStoreDomain: user.UserStoreDomain,
			Failure: &model.StoreFailure{
				Code:                code,
				MaxLoginAttempts:    user.MaxFailedAttempts,
				FailedLoginAttempts: user.FailedAttempts,
			},
		}, nil
	}
	if user.AccountDisabled {
		return &model.AuthenticationResult{
			Authenticated:   false,
			UserStoreDomain: user.UserStoreDomain,
			Failure:         &model.StoreFailure{Code: model.ErrorCodeAccountDisabled},
		}, nil
	}
	if user.ConfirmationPending {
		return &model.AuthenticationResult{
			Authenticated:   false,
			UserStoreDomain: user.UserStoreDomain,
			Failure:         &model.StoreFailure{Code: model.ErrorCodeAccountNotConfirmed},
		}, nil
	}

	ok, err := hash.VerifyStringWithSalt(password, user.Salt, user.Credential)
	if err != nil {
		return nil, err
	}

	if !ok {
		failedAttempts := user.FailedAttempts + 1
		if err := u.store.UpdateFailedAttempts(u.tenantID, tenantAwareUsername, failedAttempts); err != nil {
			logger.Error("Failed to record failed login attempt",
				log.String("username", log.MaskString(tenantAwareUsername)), log.Error(err))
		}
		return &model.AuthenticationResult{
			Authenticated:   false,
			UserStoreDomain: user.UserStoreDomain,
			Failure: &model.StoreFailure{
				Code:                model.ErrorCodeInvalidCredential,
				MaxLoginAttempts:    user.MaxFailedAttempts,
				FailedLoginAttempts: failedAttempts,
			},
		}, nil
	}

	if user.FailedAttempts > 0 {
		if err := u.store.UpdateFailedAttempts(u.tenantID, tenantAwareUsername, 0); err != nil {
			logger.Error("Failed to reset failed login attempts",
				log.String("username", log.MaskString(tenantAwareUsername)), log.Error(err))
		}
	}

	return &model.AuthenticationResult{
		Authenticated:   true,
		UserStoreDomain: user.UserStoreDomain,
	}, nil
}

// GetClaimValue returns the value of the given claim URI for the user.
// The store keys users by their plain username, so any user store domain
// qualifier is stripped before the lookup.
func (u *userRealm) GetClaimValue(tenantAwareUsername, claimURI string) (string, error) {
	return u.store.GetUserClaimValue(u.tenantID, utils.StripUserStoreDomain(tenantAwareUsername), claimURI)
}

// IsMultiAttributeEnabled reports whether the given user store domain is
// configured for multi-valued username attributes.
func (u *userRealm) IsMultiAttributeEnabled(userStoreDomain string) (bool, error) {
	if userStoreDomain == "" {
		userStoreDomain = utils.PrimaryUserStoreDomain
	}
	value, err := u.store.GetUserStoreProperty(u.tenantID, userStoreDomain, MultipleAttributeEnableProperty)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}
