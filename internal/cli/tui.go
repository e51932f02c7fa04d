package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/crm-tracker-api/internal/regionstore"
	"github.com/vfg2006/crm-tracker-api/internal/tui"
	"github.com/vfg2006/crm-tracker-api/internal/watcher"
)

func (a *app) tuiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Abre o painel interativo",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
	cmd.Flags().Bool("watch", false, "recarrega o painel quando as fixtures de --fixtures mudam")
	return cmd
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	if err := a.load(cmd.Context()); err != nil {
		return err
	}

	regions := regionstore.New(a.region)
	model, err := tui.New(a.services, regions)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch, _ := cmd.Flags().GetBool("watch"); watch && a.opts.fixtures != "" {
		go a.watchFixtures(ctx, p)
	}

	_, err = p.Run()
	return err
}

// watchFixtures recarrega o dataset a cada alteração e avisa o painel.
// Falhas não encerram o painel, que segue com o snapshot anterior.
func (a *app) watchFixtures(ctx context.Context, p *tea.Program) {
	w, err := watcher.New([]string{a.opts.fixtures}, watcher.DefaultDebounce, func() {
		if err := a.store.Reload(ctx); err != nil {
			logrus.WithError(err).Warn("Recarga das fixtures falhou, mantendo dados anteriores")
			return
		}
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível observar as fixtures")
		return
	}
	defer w.Close()

	w.Run(ctx, func(err error) {
		logrus.WithError(err).Warn("Erro ao observar as fixtures")
	})
}
