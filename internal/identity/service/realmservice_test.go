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

package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/storm/internal/identity/model"
	"github.com/asgardeo/storm/internal/identity/store"
	"github.com/asgardeo/storm/internal/system/crypto/hash"
	"github.com/asgardeo/storm/internal/system/database"
)

const (
	testTenantID = "tenant-1"
	testSalt     = "salt123"
)

type RealmServiceTestSuite struct {
	suite.Suite
	mock    sqlmock.Sqlmock
	service RealmServiceInterface
}

func TestRealmServiceSuite(t *testing.T) {
	suite.Run(t, new(RealmServiceTestSuite))
}

func (s *RealmServiceTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(s.T(), err)
	s.mock = mock

	identityStore, err := store.NewIdentityStore(database.NewDBClient(db, database.DriverSQLite))
	assert.NoError(s.T(), err)
	s.service = NewRealmService(identityStore)
}

func (s *RealmServiceTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *RealmServiceTestSuite) expectUserRow(locked, disabled, pending int64,
	lockedReason string, failed, max int64, credential string) {
	s.mock.ExpectQuery(store.QueryGetUserForAuthentication.Query).
		WithArgs(testTenantID, "alice").
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME", "CREDENTIAL", "SALT",
			"USER_STORE_DOMAIN", "ACCOUNT_LOCK", "ACCOUNT_DISABLE", "CONFIRMATION_PENDING",
			"LOCKED_REASON", "FAILED_ATTEMPTS", "MAX_FAILED_ATTEMPTS"}).
			AddRow("alice", credential, testSalt, "PRIMARY", locked, disabled, pending,
				lockedReason, failed, max))
}

func (s *RealmServiceTestSuite) realm() model.RealmInterface {
	realm, err := s.service.GetRealm(testTenantID)
	assert.NoError(s.T(), err)
	return realm
}

func (s *RealmServiceTestSuite) TestResolveTenant() {
	s.mock.ExpectQuery(store.QueryGetTenantByDomain.Query).
		WithArgs("example.com").
		WillReturnRows(sqlmock.NewRows([]string{"TENANT_ID", "TENANT_DOMAIN"}).
			AddRow(testTenantID, "example.com"))

	tenantID, err := s.service.ResolveTenant("alice@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), testTenantID, tenantID)
}

func (s *RealmServiceTestSuite) TestResolveTenantDefaultsToSuperTenant() {
	s.mock.ExpectQuery(store.QueryGetTenantByDomain.Query).
		WithArgs("carbon.super").
		WillReturnRows(sqlmock.NewRows([]string{"TENANT_ID", "TENANT_DOMAIN"}).
			AddRow("tenant-super", "carbon.super"))

	tenantID, err := s.service.ResolveTenant("alice")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "tenant-super", tenantID)
}

func (s *RealmServiceTestSuite) TestResolveTenantUnknownDomain() {
	s.mock.ExpectQuery(store.QueryGetTenantByDomain.Query).
		WithArgs("unknown.example").
		WillReturnRows(sqlmock.NewRows([]string{"TENANT_ID", "TENANT_DOMAIN"}))

	tenantID, err := s.service.ResolveTenant("alice@unknown.example")

	assert.Error(s.T(), err)
	assert.Equal(s.T(), "", tenantID)
}

func (s *RealmServiceTestSuite) TestGetRealmWithoutTenant() {
	realm, err := s.service.GetRealm("")

	assert.NoError(s.T(), err)
	assert.Nil(s.T(), realm)
}

func (s *RealmServiceTestSuite) TestAuthenticateSuccess() {
	credential, err := hash.HashStringWithSalt("secret", testSalt)
	assert.NoError(s.T(), err)
	s.expectUserRow(0, 0, 0, "", 0, 5, credential)

	result, err := s.realm().Authenticate("alice", "secret")

	assert.NoError(s.T(), err)
	assert.True(s.T(), result.Authenticated)
	assert.Equal(s.T(), "PRIMARY", result.UserStoreDomain)
	assert.Nil(s.T(), result.Failure)
}

func (s *RealmServiceTestSuite) TestAuthenticateSuccessResetsFailedAttempts() {
	credential, err := hash.HashStringWithSalt("secret", testSalt)
	assert.NoError(s.T(), err)
	s.expectUserRow(0, 0, 0, "", 2, 5, credential)
	s.mock.ExpectExec(store.QueryUpdateFailedAttempts.Query).
		WithArgs(testTenantID, "alice", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := s.realm().Authenticate("alice", "secret")

	assert.NoError(s.T(), err)
	assert.True(s.T(), result.Authenticated)
}

func (s *RealmServiceTestSuite) TestAuthenticateWrongPassword() {
	credential, err := hash.HashStringWithSalt("secret", testSalt)
	assert.NoError(s.T(), err)
	s.expectUserRow(0, 0, 0, "", 2, 5, credential)
	s.mock.ExpectExec(store.QueryUpdateFailedAttempts.Query).
		WithArgs(testTenantID, "alice", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := s.realm().Authenticate("alice", "wrong")

	assert.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)
	assert.Equal(s.T(), model.ErrorCodeInvalidCredential, result.Failure.Code)
	assert.Equal(s.T(), 5, result.Failure.MaxLoginAttempts)
	assert.Equal(s.T(), 3, result.Failure.FailedLoginAttempts)
}

func (s *RealmServiceTestSuite) TestAuthenticateUnknownUser() {
	s.mock.ExpectQuery(store.QueryGetUserForAuthentication.Query).
		WithArgs(testTenantID, "ghost").
		WillReturnRows(sqlmock.NewRows([]string{"USERNAME"}))

	result, err := s.realm().Authenticate("ghost", "secret")

	assert.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)
	assert.Equal(s.T(), model.ErrorCodeUserDoesNotExist, result.Failure.Code)
}

func (s *RealmServiceTestSuite) TestAuthenticateLockedAccountEmbedsReason() {
	s.expectUserRow(1, 0, 0, "MAX_ATTEMPTS_EXCEEDED", 5, 5, "credential")

	result, err := s.realm().Authenticate("alice", "secret")

	assert.NoError(s.T(), err)
	assert.False(s.T(), result.Authenticated)
	assert.Equal(s.T(), "USER_IS_LOCKED:MAX_ATTEMPTS_EXCEEDED", result.Failure.Code)
	assert.Equal(s.T(), 5, result.Failure.MaxLoginAttempts)
	assert.Equal(s.T(), 5, result.Failure.FailedLoginAttempts)
}

func (s *RealmServiceTestSuite) TestAuthenticateDisabledAccount() {
	s.expectUserRow(0, 1, 0, "", 0, 5, "credential")

	result, err := s.realm().Authenticate("alice", "secret")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), model.ErrorCodeAccountDisabled, result.Failure.Code)
}

func (s *RealmServiceTestSuite) TestAuthenticateConfirmationPendingAccount() {
	s.expectUserRow(0, 0, 1, "", 0, 5, "credential")

	result, err := s.realm().Authenticate("alice", "secret")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), model.ErrorCodeAccountNotConfirmed, result.Failure.Code)
}

func (s *RealmServiceTestSuite) TestGetClaimValueStripsUserStoreDomain() {
	s.mock.ExpectQuery(store.QueryGetUserClaimValue.Query).
		WithArgs(testTenantID, "alice", "http://wso2.org/claims/username").
		WillReturnRows(sqlmock.NewRows([]string{"CLAIM_VALUE"}).AddRow("alice.wonder"))

	value, err := s.realm().GetClaimValue("LDAP1/alice", "http://wso2.org/claims/username")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "alice.wonder", value)
}

func (s *RealmServiceTestSuite) TestIsMultiAttributeEnabled() {
	s.mock.ExpectQuery(store.QueryGetUserStoreProperty.Query).
		WithArgs(testTenantID, "LDAP1", MultipleAttributeEnableProperty).
		WillReturnRows(sqlmock.NewRows([]string{"PROPERTY_VALUE"}).AddRow("true"))

	enabled, err := s.realm().IsMultiAttributeEnabled("LDAP1")

	assert.NoError(s.T(), err)
	assert.True(s.T(), enabled)
}

func (s *RealmServiceTestSuite) TestIsMultiAttributeEnabledDefaultsToPrimaryDomain() {
	s.mock.ExpectQuery(store.QueryGetUserStoreProperty.Query).
		WithArgs(testTenantID, "PRIMARY", MultipleAttributeEnableProperty).
		WillReturnRows(sqlmock.NewRows([]string{"PROPERTY_VALUE"}))

	enabled, err := s.realm().IsMultiAttributeEnabled("")

	assert.NoError(s.T(), err)
	assert.False(s.T(), enabled)
}
