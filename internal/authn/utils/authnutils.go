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

// Package utils provides utility functions for authentication related operations.
package utils

import (
	"strings"
)

const (
	// DefaultTenantDomain is the tenant domain assumed when a username carries no tenant suffix.
	DefaultTenantDomain = "carbon.super"
	// PrimaryUserStoreDomain is the default user store domain, never prefixed to usernames.
	PrimaryUserStoreDomain = "PRIMARY"
	// TenantSeparator separates the username from its tenant domain.
	TenantSeparator = "@"
	// UserStoreDomainSeparator separates the user store domain from the username.
	UserStoreDomainSeparator = "/"
)

// GetTenantDomain returns the tenant domain of the given username.
// The tenant domain is the part after the last tenant separator; usernames
// without a separator belong to the default tenant.
func GetTenantDomain(username string) string {
	idx := strings.LastIndex(username, TenantSeparator)
	if idx < 0 || idx == len(username)-1 {
		return DefaultTenantDomain
	}
	return username[idx+1:]
}

// GetTenantAwareUsername strips the tenant domain suffix from the given username.
func GetTenantAwareUsername(username string) string {
	idx := strings.LastIndex(username, TenantSeparator)
	if idx < 0 {
		return username
	}
	return username[:idx]
}

// AddDomainToName qualifies the given name with the given user store domain.
// The name is returned unchanged when it is already qualified, the domain is
// blank, or the domain is the primary user store domain.
func AddDomainToName(name, domain string) string {
	if name == "" || domain == "" {
		return name
	}
	if strings.EqualFold(domain, PrimaryUserStoreDomain) {
		return name
	}
	if strings.Contains(name, UserStoreDomainSeparator) {
		return name
	}
	return strings.ToUpper(domain) + UserStoreDomainSeparator + name
}

// StripUserStoreDomain removes the user store domain qualifier from the given name.
func StripUserStoreDomain(name string) string {
	idx := strings.Index(name, UserStoreDomainSeparator)
	if idx < 0 {
		return name
	}
	return name[idx+1:]
}
