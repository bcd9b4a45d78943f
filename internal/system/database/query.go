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

// Package database provides a thin client for executing queries against the configured datasources.
package database

// DBQuery represents an identified sql query, optionally with per-driver variants.
type DBQuery struct {
	ID    string
	Query string

	// PostgresQuery and SQLiteQuery override Query for the respective driver when set.
	PostgresQuery string
	SQLiteQuery   string
}

// GetQuery returns the query string applicable for the given database type.
func (q DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DriverPostgres:
		if q.PostgresQuery != "" {
			return q.PostgresQuery
		}
	case DriverSQLite:
		if q.SQLiteQuery != "" {
			return q.SQLiteQuery
		}
	}
	return q.Query
}

// GetID returns the identifier of the query.
func (q DBQuery) GetID() string {
	return q.ID
}

const (
	// DriverPostgres is the driver name for PostgreSQL datasources.
	DriverPostgres = "postgres"
	// DriverSQLite is the driver name for SQLite datasources.
	DriverSQLite = "sqlite"
)
