package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/output"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
)

func (a *app) leadsCommand() *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lista os leads da região",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			view, err := a.services.Leads.List(leads.ListParams{Region: a.region, Query: search, Status: status})
			if err != nil {
				return err
			}
			return a.render(view, func() string { return output.Leads(view) })
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "busca por empresa ou contato")
	cmd.Flags().StringVar(&status, "status", "", "filtra por status (New, Contacted, Qualified, Proposal, Lost)")
	return cmd
}

func (a *app) accountsCommand() *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Lista as contas da região",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			view, err := a.services.Accounts.List(accounts.ListParams{Region: a.region, Query: search, Status: status})
			if err != nil {
				return err
			}
			return a.render(view, func() string { return output.Accounts(view) })
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "busca por empresa, setor ou contato principal")
	cmd.Flags().StringVar(&status, "status", "", "filtra por status (Active, Prospect, Inactive)")
	return cmd
}

func (a *app) opportunitiesCommand() *cobra.Command {
	var search, stage string

	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opps"},
		Short:   "Mostra o quadro de oportunidades por estágio",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			board, err := a.services.Opportunities.Board(opportunities.BoardParams{Region: a.region, Query: search, Stage: stage})
			if err != nil {
				return err
			}
			return a.render(board, func() string { return output.OpportunityBoard(board) })
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "busca por título, empresa ou contato")
	cmd.Flags().StringVar(&stage, "stage", "", "filtra por estágio")
	return cmd
}

func (a *app) renewalsCommand() *cobra.Command {
	var search, status, now string

	cmd := &cobra.Command{
		Use:   "renewals",
		Short: "Mostra a linha do tempo de renovações por urgência",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reference, err := a.referenceDate(now)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			timeline, err := a.services.Renewals.Timeline(renewals.TimelineParams{
				Region: a.region,
				Query:  search,
				Status: status,
				Now:    reference,
			})
			if err != nil {
				return err
			}
			return a.render(timeline, func() string { return output.RenewalTimeline(timeline) })
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "busca por empresa, tipo de contrato ou gerente da conta")
	cmd.Flags().StringVar(&status, "status", "", "filtra por status (On Track, At Risk, Confirmed, Lost)")
	cmd.PersistentFlags().StringVar(&now, "now", "", "data de referência YYYY-MM-DD; padrão hoje")

	cmd.AddCommand(&cobra.Command{
		Use:   "digest",
		Short: "Resumo de renovações por urgência e valor em risco",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reference, err := a.referenceDate(now)
			if err != nil {
				return err
			}
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			digest, err := a.services.Renewals.Digest(a.region, reference)
			if err != nil {
				return err
			}
			return a.render(digest, func() string { return output.RenewalDigest(digest) })
		},
	})

	return cmd
}

func (a *app) forecastCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Mostra a previsão de receita do período",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			view, err := a.services.Forecast.Get(a.region, period)
			if err != nil {
				return err
			}
			return a.render(view, func() string { return output.Forecast(view) })
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(domain.Period6M), "período (3M, 6M ou 12M)")
	return cmd
}

func (a *app) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Mostra os indicadores, metas e reuniões da região",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}

			view, err := a.services.Dashboard.Get(a.region)
			if err != nil {
				return err
			}
			return a.render(view, func() string { return output.Dashboard(view) })
		},
	}
}

type regionsResponse struct {
	Regions  []domain.Region `json:"regions"`
	Selected domain.Region   `json:"selected"`
}

func (a *app) regionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Lista as regiões disponíveis",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp := regionsResponse{Regions: domain.Regions(), Selected: a.region}
			return a.render(resp, func() string { return output.Regions(resp.Regions, resp.Selected) })
		},
	}
}
