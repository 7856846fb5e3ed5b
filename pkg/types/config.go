// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogConfig holds settings for the optional bookmark catalog.
type CatalogConfig struct {
	// DBPath is the SQLite database file for the catalog
	// (default "pocketport.db").
	DBPath string `json:"db" yaml:"db"`
}
