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

package main

import (
	"net/http"

	"github.com/asgardeo/storm/internal/orchestrator"
	"github.com/asgardeo/storm/internal/system/log"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux) {
	flowOrchestrator := orchestrator.NewFlowOrchestrator(nil, nil)
	mux.HandleFunc("/flow/authn", flowOrchestrator.HandleAuthenticationRequest)

	mux.HandleFunc("/health/liveness", handleLiveness)
}

// handleLiveness reports whether the server is up.
func handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"UP"}`)); err != nil {
		log.GetLogger().Error("Failed to write the liveness response", log.Error(err))
	}
}
