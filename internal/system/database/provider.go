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
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"
	"sync"
	"syscall"
	"time"

	"github.com/asgardeo/storm/internal/system/config"
	"github.com/asgardeo/storm/internal/system/log"
)

// Names of the configured datasources.
const (
	DBNameIdentity = "identity"
	DBNameRuntime  = "runtime"
)

// dbConfig represents the resolved local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	identityClient DBClientInterface
	identityMutex  sync.RWMutex
	runtimeClient  DBClientInterface
	runtimeMutex   sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
		instance.closeOnInterrupt()
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (DBClientInterface, error) {
	switch dbName {
	case DBNameIdentity:
		identityDBConfig := config.GetStormRuntime().Config.Database.Identity
		return d.getOrInitClient(&d.identityClient, &d.identityMutex, identityDBConfig)
	case DBNameRuntime:
		runtimeDBConfig := config.GetStormRuntime().Config.Database.Runtime
		return d.getOrInitClient(&d.runtimeClient, &d.runtimeMutex, runtimeDBConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		client := *clientPtr
		mutex.RUnlock()
		return client, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *DBClientInterface, dataSource config.DataSource) error {
	dbCfg := d.getDBConfig(dataSource)
	dbName := dataSource.Name

	db, err := sql.Open(dbCfg.driverName, dbCfg.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	// Enable foreign key constraints for SQLite databases.
	if dbCfg.driverName == DriverSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return fmt.Errorf("failed to enable foreign key constraints for %s: %w (close error: %w)",
					dbName, err, closeErr)
			}
			return fmt.Errorf("failed to enable foreign key constraints for %s: %w", dbName, err)
		}
	}

	*clientPtr = NewDBClient(db, dbCfg.driverName)
	return nil
}

// getDBConfig returns the database configuration based on the provided data source.
func (d *DBProvider) getDBConfig(dataSource config.DataSource) dbConfig {
	var cfg dbConfig

	switch dataSource.Type {
	case DriverPostgres:
		cfg.driverName = DriverPostgres
		cfg.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case DriverSQLite:
		cfg.driverName = DriverSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		cfg.dsn = fmt.Sprintf("%s%s", path.Join(config.GetStormRuntime().StormHome, dataSource.Path), options)
	}

	return cfg
}

// closeOnInterrupt sets up signal handling for graceful shutdown.
func (d *DBProvider) closeOnInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger := log.GetLogger()
		if err := d.close(); err != nil {
			logger.Error("Error closing database connections", log.Error(err))
		} else {
			logger.Debug("Database connections closed successfully")
		}
	}()
}

// close closes the database connections.
func (d *DBProvider) close() error {
	identityErr := d.closeClient(&d.identityClient, &d.identityMutex)
	runtimeErr := d.closeClient(&d.runtimeClient, &d.runtimeMutex)
	return errors.Join(identityErr, runtimeErr)
}

// closeClient closes a DB client with locking.
func (d *DBProvider) closeClient(clientPtr *DBClientInterface, mutex *sync.RWMutex) error {
	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr == nil {
		return nil
	}
	err := (*clientPtr).Close()
	*clientPtr = nil
	return err
}
