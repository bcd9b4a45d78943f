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

// Package main is the entry point for starting the Storm server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/joho/godotenv"

	"github.com/asgardeo/storm/internal/system/config"
	"github.com/asgardeo/storm/internal/system/log"
)

func main() {
	// Load environment overrides from a .env file when one is present.
	_ = godotenv.Load()

	logger := log.GetLogger()

	stormHome := getStormHome(logger)

	cfg := initStormConfigurations(logger, stormHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := http.NewServeMux()
	registerServices(mux)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, stormHome)
	}
}

// getStormHome retrieves and returns the Storm home directory.
func getStormHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("stormHome", "", "Path to Storm home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using stormHome from command line argument",
			log.String("stormHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initStormConfigurations initializes the Storm configurations.
func initStormConfigurations(logger *log.Logger, stormHome string) *config.Config {
	configFilePath := path.Join(stormHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeStormRuntime(stormHome, cfg); err != nil {
		logger.Fatal("Failed to initialize storm runtime", log.Error(err))
	}

	return cfg
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, stormHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	certFile := path.Join(stormHome, cfg.Security.CertFile)
	keyFile := path.Join(stormHome, cfg.Security.KeyFile)

	logger.Info("WSO2 Storm server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("WSO2 Storm server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
