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
	"github.com/asgardeo/storm/internal/authn/utils"
	"github.com/asgardeo/storm/internal/identity/service"
	"github.com/asgardeo/storm/internal/system/config"
	"github.com/asgardeo/storm/internal/system/log"
)

// UsernameResolver substitutes the authenticated username with the value of a
// configured username attribute claim when the user store permits
// multi-valued username attributes.
type UsernameResolver struct {
	realmService service.RealmServiceInterface
}

// NewUsernameResolver creates a username resolver backed by the given realm
// service.
func NewUsernameResolver(realmService service.RealmServiceInterface) *UsernameResolver {
	if realmService == nil {
		realmService = service.GetRealmService()
	}
	return &UsernameResolver{realmService: realmService}
}

// Resolve returns the canonical username for an authenticated user. When no
// username attribute claim is configured, the user store does not enable
// multi-valued attributes, or any lookup fails, the username is returned
// unchanged: claim substitution never fails an already successful login.
func (r *UsernameResolver) Resolve(username, userStoreDomain string) string {
	claimURI := config.GetStormRuntime().Config.BasicAuth.UserNameAttributeClaimURI
	if claimURI == "" {
		return username
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	tenantID, err := r.realmService.ResolveTenant(username)
	if err != nil {
		logger.Debug("Error while resolving the tenant for username attribute substitution",
			log.String("username", log.MaskString(username)), log.Error(err))
		return username
	}
	realm, err := r.realmService.GetRealm(tenantID)
	if err != nil || realm == nil {
		logger.Debug("Error while retrieving the realm for username attribute substitution",
			log.String("username", log.MaskString(username)))
		return username
	}

	enabled, err := realm.IsMultiAttributeEnabled(userStoreDomain)
	if err != nil {
		logger.Debug("Error while checking the multi attribute capability of the user store",
			log.Error(err))
		return username
	}
	if !enabled {
		logger.Debug("Multi attribute login is not enabled for the user store",
			log.String("userStoreDomain", userStoreDomain))
		return username
	}

	claimValue, err := realm.GetClaimValue(utils.GetTenantAwareUsername(username), claimURI)
	if err != nil {
		logger.Debug("Error while retrieving the username attribute claim value",
			log.String("claimURI", claimURI), log.Error(err))
		return username
	}
	if claimValue == "" {
		return username
	}

	tenantDomain := utils.GetTenantDomain(username)
	resolved := utils.AddDomainToName(claimValue, userStoreDomain) +
		utils.TenantSeparator + tenantDomain
	logger.Debug("Substituted the username with the configured username attribute",
		log.String("username", log.MaskString(resolved)))
	return resolved
}
