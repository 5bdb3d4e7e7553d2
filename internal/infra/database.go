package infra

import (
	"fmt"

	"github.com/Central-IR/contas-receber/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update the tables, then applies idempotent SQL patches that GORM
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Also used by the integration test
// harness against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ContaReceber{},
		&model.Observacao{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// GIN index for querying inside dados_frete (rastreio, transportadora)
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'contas_receber')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_contas_receber_dados_frete') THEN
		    CREATE INDEX idx_contas_receber_dados_frete
		        ON contas_receber USING GIN (dados_frete);
		  END IF;
		END $$`,
		// CHECK constraints GORM does not emit from struct tags
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_contas_receber_status') THEN
		    ALTER TABLE contas_receber
		      ADD CONSTRAINT chk_contas_receber_status
		      CHECK (status IN ('PAGO', 'VENCIDO', 'PENDENTE'));
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_contas_receber_valores') THEN
		    ALTER TABLE contas_receber
		      ADD CONSTRAINT chk_contas_receber_valores
		      CHECK (valor_nota >= 0 AND valor_pago >= 0);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
