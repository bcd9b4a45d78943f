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

package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	client DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (s *DBClientTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(s.T(), err)
	s.mock = mock
	s.client = NewDBClient(db, DriverSQLite)
}

func (s *DBClientTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *DBClientTestSuite) TestQueryLowercasesColumnNames() {
	query := DBQuery{ID: "STQ-TEST-01", Query: "SELECT TENANT_ID FROM TENANT WHERE TENANT_DOMAIN = $1"}
	s.mock.ExpectQuery(query.Query).
		WithArgs("example.com").
		WillReturnRows(sqlmock.NewRows([]string{"TENANT_ID"}).AddRow("tenant-1"))

	results, err := s.client.Query(query, "example.com")

	assert.NoError(s.T(), err)
	assert.Len(s.T(), results, 1)
	assert.Equal(s.T(), "tenant-1", results[0]["tenant_id"])
}

func (s *DBClientTestSuite) TestQueryReturnsEmptyResultSet() {
	query := DBQuery{ID: "STQ-TEST-02", Query: "SELECT TENANT_ID FROM TENANT"}
	s.mock.ExpectQuery(query.Query).
		WillReturnRows(sqlmock.NewRows([]string{"TENANT_ID"}))

	results, err := s.client.Query(query)

	assert.NoError(s.T(), err)
	assert.Empty(s.T(), results)
}

func (s *DBClientTestSuite) TestQueryError() {
	query := DBQuery{ID: "STQ-TEST-03", Query: "SELECT TENANT_ID FROM TENANT"}
	s.mock.ExpectQuery(query.Query).WillReturnError(errors.New("bad connection"))

	results, err := s.client.Query(query)

	assert.Error(s.T(), err)
	assert.Nil(s.T(), results)
}

func (s *DBClientTestSuite) TestExecuteReturnsAffectedRows() {
	query := DBQuery{ID: "STQ-TEST-04", Query: "UPDATE TENANT_USER SET FAILED_ATTEMPTS = $1"}
	s.mock.ExpectExec(query.Query).
		WithArgs(0).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := s.client.Execute(query, 0)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), affected)
}

func (s *DBClientTestSuite) TestClose() {
	s.mock.ExpectClose()

	assert.NoError(s.T(), s.client.Close())
}
