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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	identitymodel "github.com/asgardeo/storm/internal/identity/model"
	"github.com/asgardeo/storm/internal/system/config"
)

const testUsernameClaimURI = "http://wso2.org/claims/username"

type UsernameResolverTestSuite struct {
	suite.Suite
	realm        *fakeRealm
	realmService *fakeRealmService
	resolver     *UsernameResolver
}

func TestUsernameResolverSuite(t *testing.T) {
	suite.Run(t, new(UsernameResolverTestSuite))
}

func (s *UsernameResolverTestSuite) SetupTest() {
	s.initRuntime(testUsernameClaimURI)
	s.realm = &fakeRealm{multiAttributeEnabled: true}
	s.realmService = &fakeRealmService{realm: s.realm}
	s.resolver = NewUsernameResolver(s.realmService)
}

func (s *UsernameResolverTestSuite) TearDownTest() {
	config.ResetStormRuntime()
}

func (s *UsernameResolverTestSuite) initRuntime(claimURI string) {
	config.ResetStormRuntime()
	err := config.InitializeStormRuntime(testResourcesDir, &config.Config{
		BasicAuth: config.BasicAuthConfig{UserNameAttributeClaimURI: claimURI},
	})
	assert.NoError(s.T(), err)
}

func (s *UsernameResolverTestSuite) TestResolveSubstitutesUsernameAttribute() {
	s.realm.claimValue = "alice.wonder"

	resolved := s.resolver.Resolve("LDAP1/alice@example.com", "LDAP1")

	assert.Equal(s.T(), "LDAP1/alice.wonder@example.com", resolved)
	assert.Equal(s.T(), "LDAP1/alice", s.realm.lastClaimUsername)
	assert.Equal(s.T(), testUsernameClaimURI, s.realm.lastClaimURI)
	assert.Equal(s.T(), "LDAP1", s.realm.lastUserStoreDomain)
}

func (s *UsernameResolverTestSuite) TestResolveWithoutConfiguredClaim() {
	s.initRuntime("")
	s.realm.claimValue = "alice.wonder"

	resolved := s.resolver.Resolve("alice@example.com", "")

	assert.Equal(s.T(), "alice@example.com", resolved)
	assert.Equal(s.T(), 0, s.realmService.resolveCalls)
}

func (s *UsernameResolverTestSuite) TestResolveWhenMultiAttributeIsDisabled() {
	s.realm.multiAttributeEnabled = false
	s.realm.claimValue = "alice.wonder"

	resolved := s.resolver.Resolve("alice@example.com", "")

	assert.Equal(s.T(), "alice@example.com", resolved)
	assert.Equal(s.T(), "", s.realm.lastClaimUsername)
}

func (s *UsernameResolverTestSuite) TestResolveWhenClaimValueIsEmpty() {
	s.realm.claimValue = ""

	resolved := s.resolver.Resolve("alice@example.com", "")

	assert.Equal(s.T(), "alice@example.com", resolved)
}

func (s *UsernameResolverTestSuite) TestResolveSwallowsClaimLookupFailure() {
	s.realm.claimErr = errors.New("claim store unavailable")

	resolved := s.resolver.Resolve("alice@example.com", "")

	assert.Equal(s.T(), "alice@example.com", resolved)
}

func (s *UsernameResolverTestSuite) TestResolveSwallowsTenantResolutionFailure() {
	s.realmService.resolveErr = errors.New("tenant store unavailable")

	resolved := s.resolver.Resolve("alice@unknown.example", "")

	assert.Equal(s.T(), "alice@unknown.example", resolved)
}

func (s *UsernameResolverTestSuite) TestResolveSwallowsMultiAttributeLookupFailure() {
	s.realm.multiAttributeErr = errors.New("property store unavailable")

	resolved := s.resolver.Resolve("alice@example.com", "")

	assert.Equal(s.T(), "alice@example.com", resolved)
}

func (s *UsernameResolverTestSuite) TestVerifierResolvesRealmByTenant() {
	authResult := &identitymodel.AuthenticationResult{Authenticated: true}
	s.realm.result = authResult
	verifier := NewCredentialVerifier(s.realmService)

	result, err := verifier.Verify("alice@example.com", "secret")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), authResult, result)
	assert.Equal(s.T(), "alice", s.realm.lastUsername)
}
