package services

import (
	"fmt"
	"log"

	"github.com/navedhana-tech/navedhana-cms-backend/config"
)

// OpenStore connects the storefront data source selected by DATA_SOURCE.
// config.InitDB must have run first for the postgres source.
func OpenStore() (Store, error) {
	switch config.App.DataSource {
	case config.DataSourcePostgres:
		if config.StoreGorm == nil {
			return nil, fmt.Errorf("postgres store requested but STORE_DB_URL is not connected")
		}
		ps := NewPostgresStore(config.StoreGorm)
		if !config.App.IsProduction() {
			if err := ps.Migrate(); err != nil {
				return nil, fmt.Errorf("migrate store tables: %w", err)
			}
		}
		log.Println("✅ Using Postgres as the storefront data source")
		return ps, nil

	case config.DataSourceMongo:
		config.ConnectMongo()
		log.Println("✅ Using MongoDB as the storefront data source")
		return NewMongoStore(config.MongoDB, config.ReportLocation), nil
	}
	return nil, fmt.Errorf("unknown DATA_SOURCE %q", config.App.DataSource)
}
