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
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/asgardeo/storm/internal/governance"
	"github.com/asgardeo/storm/internal/system/config"
	"github.com/asgardeo/storm/internal/system/log"
)

// CaptchaFileConfig is the captcha deployment configuration. All four
// properties must be present for captcha to be considered configured.
type CaptchaFileConfig struct {
	SiteKey   string `yaml:"site_key"`
	APIURL    string `yaml:"api_url"`
	SecretKey string `yaml:"secret_key"`
	VerifyURL string `yaml:"verify_url"`
}

// CaptchaGate decides whether a login redirect must carry the captcha
// challenge parameters for a tenant.
type CaptchaGate struct {
	governanceService governance.ServiceInterface
}

// NewCaptchaGate creates a captcha gate backed by the given governance
// service.
func NewCaptchaGate(governanceService governance.ServiceInterface) *CaptchaGate {
	if governanceService == nil {
		governanceService = governance.GetGovernanceService()
	}
	return &CaptchaGate{governanceService: governanceService}
}

// Fragment returns the captcha query parameters for the given tenant, or the
// empty string when captcha is not enforced. Captcha is appended only when
// the deployment configuration is complete and the tenant's governance
// connector enforces it. A governance lookup failure disables captcha for
// the attempt rather than blocking the login.
func (g *CaptchaGate) Fragment(tenantDomain string) string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	captchaConfig := readCaptchaConfig(logger)

	properties, err := g.governanceService.GetConfiguration(
		[]string{recaptchaAlwaysEnableProperty}, tenantDomain)
	if err != nil {
		logger.Error("Error while retrieving the captcha connector configuration. "+
			"Proceeding the authentication request without enabling recaptcha",
			log.String(log.LoggerKeyTenantDomain, tenantDomain), log.Error(err))
		return ""
	}

	forceCaptcha := false
	if len(properties) > 0 {
		forceCaptcha, _ = strconv.ParseBool(properties[0].Value)
	}
	if !forceCaptcha || captchaConfig == nil {
		logger.Debug("Enforcing recaptcha for the basic authentication flow is not enabled",
			log.String(log.LoggerKeyTenantDomain, tenantDomain))
		return ""
	}

	return captchaEnabledParam +
		captchaKeyParam + url.QueryEscape(captchaConfig.SiteKey) +
		captchaAPIParam + url.QueryEscape(captchaConfig.APIURL)
}

// readCaptchaConfig loads the captcha deployment configuration. A missing or
// partial file is treated as captcha being unconfigured.
func readCaptchaConfig(logger *log.Logger) *CaptchaFileConfig {
	stormRuntime := config.GetStormRuntime()
	configPath := stormRuntime.Config.Captcha.ConfigFile
	if configPath == "" {
		return nil
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(stormRuntime.StormHome, configPath)
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		logger.Error("Error while loading the captcha configuration file", log.Error(err))
		return nil
	}

	var captchaConfig CaptchaFileConfig
	if err := yaml.Unmarshal(data, &captchaConfig); err != nil {
		logger.Error("Error while parsing the captcha configuration file", log.Error(err))
		return nil
	}

	if captchaConfig.SiteKey == "" || captchaConfig.APIURL == "" ||
		captchaConfig.SecretKey == "" || captchaConfig.VerifyURL == "" {
		logger.Debug("Empty values found for the captcha properties. " +
			"Treating captcha as unconfigured")
		return nil
	}
	return &captchaConfig
}
