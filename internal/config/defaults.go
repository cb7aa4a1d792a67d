package config

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Default values applied to fields that no source has set.
const (
	DefaultDBDriver           = DriverSQLite
	DefaultDBDSN              = "medlux_suite.db?_busy_timeout=5000&_txlock=immediate"
	DefaultHTTPAddress        = "127.0.0.1:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultSessionIssuer      = "medlux-suite"
	DefaultRecentMeasurements = 10
	DefaultProbeInterval      = 15 * time.Second
	DefaultAdapterAddress     = "http://127.0.0.1:8080"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSignKey:     randomKey(),
			SessionIssuer:      DefaultSessionIssuer,
			RecentMeasurements: DefaultRecentMeasurements,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			ProbeInterval: DefaultProbeInterval,
		},
	}
}

func randomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
