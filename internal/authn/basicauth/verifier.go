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
	authnmodel "github.com/asgardeo/storm/internal/authn/model"
	"github.com/asgardeo/storm/internal/authn/utils"
	identitymodel "github.com/asgardeo/storm/internal/identity/model"
	"github.com/asgardeo/storm/internal/identity/service"
)

// CredentialVerifier resolves the tenant realm of a user and checks the
// submitted credentials against it.
type CredentialVerifier struct {
	realmService service.RealmServiceInterface
}

// NewCredentialVerifier creates a credential verifier backed by the given
// realm service.
func NewCredentialVerifier(realmService service.RealmServiceInterface) *CredentialVerifier {
	if realmService == nil {
		realmService = service.GetRealmService()
	}
	return &CredentialVerifier{realmService: realmService}
}

// Verify resolves the user's tenant realm and authenticates the credentials
// against it. Infrastructure failures are returned as terminal authentication
// failures carrying the submitted username; a credential rejection is returned
// as a result with the store's failure classification.
func (v *CredentialVerifier) Verify(username, password string) (
	*identitymodel.AuthenticationResult, error) {
	tenantID, err := v.realmService.ResolveTenant(username)
	if err != nil {
		return nil, authnmodel.NewAuthenticationFailedError(
			"failed to resolve the tenant of the user", username, err)
	}

	realm, err := v.realmService.GetRealm(tenantID)
	if err != nil {
		return nil, authnmodel.NewAuthenticationFailedError(
			"failed to retrieve the user realm for tenant: "+tenantID, username, err)
	}
	if realm == nil {
		return nil, authnmodel.NewAuthenticationFailedError(
			"cannot find the user realm for tenant: "+tenantID, username, nil)
	}

	result, err := realm.Authenticate(utils.GetTenantAwareUsername(username), password)
	if err != nil {
		return nil, authnmodel.NewAuthenticationFailedError(
			"error while authenticating the user with the realm", username, err)
	}
	return result, nil
}
