package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/crm-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-tracker-api/infrastructure/migration"
	"github.com/vfg2006/crm-tracker-api/infrastructure/repository"
	"github.com/vfg2006/crm-tracker-api/internal/config"
	"github.com/vfg2006/crm-tracker-api/internal/dataset"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/apiErrors"
)

type seedResponse struct {
	Source    string         `json:"source"`
	Documents int            `json:"documents"`
	DryRun    bool           `json:"dry_run"`
	Counts    dataset.Counts `json:"counts"`
	Duration  string         `json:"duration,omitempty"`
}

func (a *app) seedCommand() *cobra.Command {
	var dryRun, migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Valida as fixtures e grava o dataset no PostgreSQL",
		Long: `seed carrega as fixtures (embutidas ou de --fixtures), valida e grava um
documento por região e conjunto na tabela crm_datasets. A conexão usa as
mesmas variáveis DATABASE_* da API. Com --dry-run apenas valida.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			loader, err := a.fixtureLoader()
			if err != nil {
				return err
			}

			snapshot, err := loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("erro ao carregar %s: %w", loader.Name(), err)
			}

			resp := seedResponse{Source: snapshot.Source, DryRun: dryRun, Counts: snapshot.Counts()}

			if dryRun {
				docs, err := snapshot.Documents()
				if err != nil {
					return err
				}
				resp.Documents = len(docs)
				return a.render(resp, func() string { return seedSummary(resp) })
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return newError(apiErrors.ErrInvalidRequest, "configuração inválida: %v", err)
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return newError(apiErrors.ErrDatabaseOperation, "%v", err)
			}
			defer conn.Close()

			if migrate {
				if err := migration.Apply(ctx, conn); err != nil {
					return newError(apiErrors.ErrDatabaseOperation, "%v", err)
				}
			}

			result, err := migration.Seed(ctx, loader, repository.NewDatasetRepository(conn))
			if err != nil {
				return newError(apiErrors.ErrDatabaseOperation, "%v", err)
			}

			resp.Documents = result.Documents
			resp.Duration = result.Duration.String()
			return a.render(resp, func() string { return seedSummary(resp) })
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apenas valida as fixtures, sem gravar")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "cria a tabela crm_datasets antes de gravar")
	return cmd
}

func seedSummary(resp seedResponse) string {
	verb := "gravados"
	if resp.DryRun {
		verb = "validados"
	}

	summary := fmt.Sprintf("%d documentos %s de %s", resp.Documents, verb, resp.Source)
	if resp.Duration != "" {
		summary += " em " + resp.Duration
	}
	summary += "\n"

	for _, kind := range domain.DatasetKinds() {
		summary += fmt.Sprintf("  %-14s", kind)
		for _, region := range domain.Regions() {
			summary += fmt.Sprintf("  %s %d", region, resp.Counts[kind][region])
		}
		summary += "\n"
	}
	return summary
}
