// Package tui implementa o painel interativo do CRM no terminal.
package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/internal/filter"
	"github.com/vfg2006/crm-tracker-api/internal/output"
	"github.com/vfg2006/crm-tracker-api/internal/regionstore"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/accounts"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/forecast"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/leads"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/opportunities"
	"github.com/vfg2006/crm-tracker-api/internal/usecases/renewals"
)

type page int

const (
	pageDashboard page = iota
	pageLeads
	pageAccounts
	pageOpportunities
	pageRenewals
	pageForecast
	pageCount
)

var pageTitles = [pageCount]string{"Dashboard", "Leads", "Accounts", "Opportunities", "Renewals", "Forecast"}

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("39")).Underline(true)
	regionStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var (
	keyQuit       = key.NewBinding(key.WithKeys("ctrl+c"))
	keyNextPage   = key.NewBinding(key.WithKeys("tab"))
	keyPrevPage   = key.NewBinding(key.WithKeys("shift+tab"))
	keyStatus     = key.NewBinding(key.WithKeys("ctrl+s"))
	keyRegion     = key.NewBinding(key.WithKeys("ctrl+r"))
	keyClearQuery = key.NewBinding(key.WithKeys("esc"))
)

// Services são os serviços de visualização consumidos pelo painel
type Services struct {
	Dashboard     dashboard.DashboardService
	Leads         leads.LeadService
	Accounts      accounts.AccountService
	Opportunities opportunities.OpportunityService
	Renewals      renewals.RenewalService
	Forecast      forecast.ForecastService
}

// RegionStore é a parte do regionstore.Store usada pelo painel
type RegionStore interface {
	Get() domain.Region
	Set(region domain.Region) (bool, error)
	Subscribe(listener regionstore.Listener) (string, error)
	Unsubscribe(id string)
}

// RegionChangedMsg chega quando a região selecionada muda, venha de onde vier a troca
type RegionChangedMsg struct {
	Region domain.Region
}

// ReloadMsg pede para reler o dataset após uma recarga das fixtures
type ReloadMsg struct{}

// Model é o modelo bubbletea do painel
type Model struct {
	services Services
	regions  RegionStore
	changes  chan domain.Region
	done     chan struct{}
	subID    string

	closeOnce sync.Once

	page    page
	region  domain.Region
	input   textinput.Model
	status  int
	content string
	err     error
	width   int
}

func New(services Services, regions RegionStore) (*Model, error) {
	input := textinput.New()
	input.Placeholder = "buscar..."
	input.Prompt = "/ "
	input.Focus()

	m := &Model{
		services: services,
		regions:  regions,
		changes:  make(chan domain.Region, 4),
		done:     make(chan struct{}),
		region:   regions.Get(),
		input:    input,
	}

	id, err := regions.Subscribe(func(_, current domain.Region) {
		select {
		case m.changes <- current:
		default:
			logrus.WithField("region", current).Warn("Fila de trocas de região cheia, descartando aviso")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao observar região: %w", err)
	}
	m.subID = id

	m.refresh()
	return m, nil
}

// Close cancela a inscrição no RegionStore e libera a espera por trocas de região
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.regions.Unsubscribe(m.subID)
		close(m.done)
	})
}

func (m *Model) waitForRegion() tea.Cmd {
	return func() tea.Msg {
		select {
		case region := <-m.changes:
			return RegionChangedMsg{Region: region}
		case <-m.done:
			return nil
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForRegion())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case RegionChangedMsg:
		// Busca e status continuam valendo na nova região
		m.region = msg.Region
		m.refresh()
		return m, m.waitForRegion()
	case ReloadMsg:
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit
	case key.Matches(msg, keyNextPage):
		m.page = (m.page + 1) % pageCount
		m.resetFilters()
	case key.Matches(msg, keyPrevPage):
		m.page = (m.page + pageCount - 1) % pageCount
		m.resetFilters()
	case key.Matches(msg, keyStatus):
		if options := m.statusOptions(); len(options) > 0 {
			m.status = (m.status + 1) % len(options)
		}
	case key.Matches(msg, keyRegion):
		// O RegionStore avisa via RegionChangedMsg
		if _, err := m.regions.Set(m.region.Next()); err != nil {
			m.err = err
		}
		return m, nil
	case key.Matches(msg, keyClearQuery):
		m.input.SetValue("")
	default:
		if !m.searchable() {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refresh()
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// resetFilters limpa busca e status ao trocar de página
func (m *Model) resetFilters() {
	m.input.SetValue("")
	m.status = 0
}

func (m *Model) searchable() bool {
	return m.page != pageDashboard && m.page != pageForecast
}

// statusOptions retorna os valores do ciclo de ctrl+s; na previsão são os períodos
func (m *Model) statusOptions() []string {
	switch m.page {
	case pageLeads:
		return filter.StatusOptions(domain.LeadStatuses())
	case pageAccounts:
		return filter.StatusOptions(domain.AccountStatuses())
	case pageOpportunities:
		return filter.StatusOptions(domain.Stages())
	case pageRenewals:
		return filter.StatusOptions(domain.RenewalStatuses())
	case pageForecast:
		return []string{string(domain.Period6M), string(domain.Period3M), string(domain.Period12M)}
	default:
		return nil
	}
}

func (m *Model) currentStatus() string {
	options := m.statusOptions()
	if len(options) == 0 {
		return ""
	}
	return options[m.status%len(options)]
}

// refresh recalcula o conteúdo da página atual
func (m *Model) refresh() {
	content, err := m.render()
	m.err = err
	if err == nil {
		m.content = content
	}
}

func (m *Model) render() (string, error) {
	query := m.input.Value()
	status := m.currentStatus()

	switch m.page {
	case pageDashboard:
		v, err := m.services.Dashboard.Get(m.region)
		if err != nil {
			return "", err
		}
		return output.Dashboard(v), nil
	case pageLeads:
		v, err := m.services.Leads.List(leads.ListParams{Region: m.region, Query: query, Status: status})
		if err != nil {
			return "", err
		}
		return output.Leads(v), nil
	case pageAccounts:
		v, err := m.services.Accounts.List(accounts.ListParams{Region: m.region, Query: query, Status: status})
		if err != nil {
			return "", err
		}
		return output.Accounts(v), nil
	case pageOpportunities:
		v, err := m.services.Opportunities.Board(opportunities.BoardParams{Region: m.region, Query: query, Stage: status})
		if err != nil {
			return "", err
		}
		return output.OpportunityBoard(v), nil
	case pageRenewals:
		v, err := m.services.Renewals.Timeline(renewals.TimelineParams{Region: m.region, Query: query, Status: status})
		if err != nil {
			return "", err
		}
		return output.RenewalTimeline(v), nil
	case pageForecast:
		v, err := m.services.Forecast.Get(m.region, status)
		if err != nil {
			return "", err
		}
		return output.Forecast(v), nil
	}
	return "", nil
}

func (m *Model) View() string {
	var sb strings.Builder

	tabs := make([]string, 0, pageCount)
	for i, title := range pageTitles {
		if page(i) == m.page {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("  " + regionStyle.Render(string(m.region)) + "\n\n")

	if m.searchable() {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}
	if status := m.currentStatus(); status != "" {
		sb.WriteString(helpStyle.Render("filtro: "+status) + "\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	} else {
		sb.WriteString(m.content)
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab: página · ctrl+s: status · ctrl+r: região · esc: limpar busca · ctrl+c: sair"))
	return sb.String()
}
