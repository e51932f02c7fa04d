// Package migration cria o schema do dataset e grava as fixtures no banco.
package migration

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-tracker-api/infrastructure/repository"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS crm_datasets (
		region     TEXT        NOT NULL,
		kind       TEXT        NOT NULL,
		payload    JSONB       NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (region, kind)
	)`,
	`CREATE INDEX IF NOT EXISTS crm_datasets_updated_at_idx ON crm_datasets (updated_at DESC)`,
}

// Statements retorna o DDL aplicado por Apply, na ordem
func Statements() []string {
	return append([]string(nil), statements...)
}

// Apply executa o DDL; todas as instruções são idempotentes
func Apply(ctx context.Context, conn postgres.Queryer) error {
	for i, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "erro ao aplicar migração %d", i+1)
		}
	}

	logrus.WithField("statements", len(statements)).Info("Migrações aplicadas")
	return nil
}

// SeedResult resume uma carga de fixtures no banco
type SeedResult struct {
	Source    string
	Documents int
	Duration  time.Duration
}

// Seed carrega e valida o dataset do loader e grava um documento por região e conjunto
func Seed(ctx context.Context, loader dataset.Loader, repo repository.DatasetRepository) (*SeedResult, error) {
	start := time.Now()

	snapshot, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar dataset de %s", loader.Name())
	}

	docs, err := snapshot.Documents()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar dataset")
	}

	if err := repo.Upsert(ctx, docs); err != nil {
		return nil, err
	}

	result := &SeedResult{
		Source:    snapshot.Source,
		Documents: len(docs),
		Duration:  time.Since(start),
	}

	logrus.WithFields(logrus.Fields{
		"source":    result.Source,
		"documents": result.Documents,
		"duration":  result.Duration.String(),
	}).Info("Seed do dataset concluído")

	return result, nil
}
