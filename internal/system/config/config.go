/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/asgardeo/storm/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// GateClientConfig holds the configuration of the client hosting the login pages.
type GateClientConfig struct {
	Scheme       string `yaml:"scheme"`
	Hostname     string `yaml:"hostname"`
	Port         int    `yaml:"port"`
	LoginPath    string `yaml:"login_path"`
	RetryPath    string `yaml:"retry_path"`
	RecoveryPath string `yaml:"recovery_path"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Options  string `yaml:"options"`

	MaxOpenConns    int `yaml:"max_open_conns"`
	MaxIdleConns    int `yaml:"max_idle_conns"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
	Runtime  DataSource `yaml:"runtime"`
}

// BasicAuthConfig holds the configuration of the local username/password authenticator.
type BasicAuthConfig struct {
	ShowAuthFailureReason     bool   `yaml:"show_auth_failure_reason"`
	UserNameAttributeClaimURI string `yaml:"username_attribute_claim_uri"`
}

// CaptchaConfig holds the captcha related configuration details.
type CaptchaConfig struct {
	ConfigFile string `yaml:"config_file"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	GateClient GateClientConfig `yaml:"gate_client"`
	Security   SecurityConfig   `yaml:"security"`
	Database   DatabaseConfig   `yaml:"database"`
	BasicAuth  BasicAuthConfig  `yaml:"basic_auth"`
	Captcha    CaptchaConfig    `yaml:"captcha"`
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
