package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/adapter/repository"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/repository"
)

// Repositories bundles all repository implementations
type Repositories struct {
	SyncRun repository.SyncRunRepository
}

// NewRepositories creates all repositories with the given database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		SyncRun: adapterrepo.NewSyncRunRepository(db, logger),
	}
}
