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

// Package governance provides per-tenant connector configuration lookup.
package governance

import (
	"fmt"
	"sync"

	"github.com/asgardeo/storm/internal/system/database"
	"github.com/asgardeo/storm/internal/system/log"
)

// QueryGetConnectorProperty is the query to read a connector property of a tenant.
var QueryGetConnectorProperty = database.DBQuery{
	ID: "STQ-GOV_MGT-01",
	Query: "SELECT PROPERTY_NAME, PROPERTY_VALUE FROM CONNECTOR_CONFIG " +
		"WHERE TENANT_DOMAIN = $1 AND PROPERTY_NAME = $2",
}

// Property is a named connector configuration value of a tenant.
type Property struct {
	Name  string
	Value string
}

// ServiceInterface defines the contract of the governance configuration service.
type ServiceInterface interface {
	// GetConfiguration returns the values of the requested connector properties
	// for the given tenant domain. Properties without a stored value are omitted.
	GetConfiguration(propertyNames []string, tenantDomain string) ([]Property, error)
}

// governanceService is the database backed implementation of ServiceInterface.
type governanceService struct {
	client database.DBClientInterface
}

var (
	instance ServiceInterface
	once     sync.Once
)

// GetGovernanceService returns a singleton instance of the governance service.
func GetGovernanceService() ServiceInterface {
	once.Do(func() {
		client, err := database.GetDBProvider().GetDBClient(database.DBNameRuntime)
		if err != nil {
			log.GetLogger().Fatal("Failed to initialize the governance service", log.Error(err))
		}
		instance = &governanceService{client: client}
	})
	return instance
}

// NewGovernanceService creates a governance service backed by the given database client.
func NewGovernanceService(client database.DBClientInterface) ServiceInterface {
	return &governanceService{client: client}
}

// GetConfiguration returns the values of the requested connector properties for the tenant.
func (g *governanceService) GetConfiguration(propertyNames []string, tenantDomain string) ([]Property, error) {
	properties := make([]Property, 0, len(propertyNames))
	for _, name := range propertyNames {
		results, err := g.client.Query(QueryGetConnectorProperty, tenantDomain, name)
		if err != nil {
			return nil, fmt.Errorf("failed to query connector property %s for tenant %s: %w",
				name, tenantDomain, err)
		}
		if len(results) == 0 {
			continue
		}
		row := results[0]
		properties = append(properties, Property{
			Name:  stringValue(row["property_name"]),
			Value: stringValue(row["property_value"]),
		})
	}
	return properties, nil
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
