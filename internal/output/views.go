package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/crm-tracker-api/internal/domain"
	"github.com/vfg2006/crm-tracker-api/pkg/utils"
)

func filterParts(query, status string) []string {
	var parts []string
	if query != "" {
		parts = append(parts, fmt.Sprintf("busca %q", query))
	}
	if status != "" && status != "All" {
		parts = append(parts, "status "+status)
	}
	return parts
}

func Leads(v *domain.LeadsView) string {
	var sb strings.Builder
	sb.WriteString(heading("Leads · "+string(v.Region),
		append([]string{countLabel(v.Count, "lead", "leads"), utils.FormatNOK(v.TotalValue)},
			filterParts(v.Query, v.Status)...)...))

	if len(v.Leads) == 0 {
		sb.WriteString(dimStyle.Render("Nenhum lead encontrado") + "\n")
		return sb.String()
	}

	t := newTable("ID", "EMPRESA", "CONTATO", "STATUS", "ORIGEM", "VALOR", "ÚLTIMO CONTATO").alignRight(5)
	for _, l := range v.Leads {
		t.add(l.ID, l.Company, l.Contact, styled(string(l.Status), statusStyles),
			dash(l.Source), utils.FormatNOK(l.Value), dash(l.LastContact.String()))
	}
	sb.WriteString(t.String())
	return sb.String()
}

func Accounts(v *domain.AccountsView) string {
	var sb strings.Builder
	sb.WriteString(heading("Contas · "+string(v.Region),
		append([]string{countLabel(v.Count, "conta", "contas"), utils.FormatNOK(v.TotalValue)},
			filterParts(v.Query, v.Status)...)...))

	if len(v.Accounts) == 0 {
		sb.WriteString(dimStyle.Render("Nenhuma conta encontrada") + "\n")
		return sb.String()
	}

	t := newTable("", "EMPRESA", "SETOR", "STATUS", "VALOR", "FUNC.", "CONTATO", "PRÓXIMA REUNIÃO").alignRight(4, 5)
	for _, a := range v.Accounts {
		next := ""
		if a.NextMeeting != nil {
			next = a.NextMeeting.String()
		}
		t.add(a.Initials, a.Company, dash(a.Industry), styled(string(a.Status), statusStyles),
			utils.FormatNOK(a.Value), strconv.Itoa(a.Employees), dash(a.KeyContact.Name), dash(next))
	}
	sb.WriteString(t.String())
	return sb.String()
}

// OpportunityBoard lista as colunas em sequência, inclusive as vazias
func OpportunityBoard(v *domain.OpportunitiesBoard) string {
	var sb strings.Builder
	sb.WriteString(heading("Oportunidades · "+string(v.Region),
		append([]string{
			countLabel(v.Count, "oportunidade", "oportunidades"),
			"total " + utils.FormatNOK(v.TotalValue),
			"ponderado " + utils.FormatNOK(v.WeightedValue),
		}, filterParts(v.Query, v.Stage)...)...))

	for _, col := range v.Columns {
		sb.WriteString("\n")
		sb.WriteString(styled(string(col.Stage), statusStyles))
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%d) %s", col.Count, utils.FormatCompactNOK(col.Value))))
		sb.WriteString("\n")

		if len(col.Opportunities) == 0 {
			sb.WriteString(dimStyle.Render("  --") + "\n")
			continue
		}

		t := newTable("  ID", "TÍTULO", "EMPRESA", "VALOR", "PROB.", "FECHAMENTO").alignRight(3, 4)
		for _, o := range col.Opportunities {
			t.add("  "+o.ID, o.Title, o.Company, utils.FormatNOK(o.Value),
				styled(string(o.Band), bandStyles)+" "+strconv.Itoa(o.Probability)+"%", o.CloseDate.String())
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

func RenewalTimeline(v *domain.RenewalsTimeline) string {
	var sb strings.Builder
	sb.WriteString(heading("Renovações · "+string(v.Region),
		append([]string{
			countLabel(v.Count, "renovação", "renovações"),
			"total " + utils.FormatNOK(v.TotalValue),
			"em risco " + utils.FormatNOK(v.AtRiskValue),
			"referência " + v.ReferenceDate.String(),
		}, filterParts(v.Query, v.Status)...)...))

	if len(v.Groups) == 0 {
		sb.WriteString(dimStyle.Render("Nenhuma renovação encontrada") + "\n")
		return sb.String()
	}

	for _, g := range v.Groups {
		sb.WriteString("\n")
		sb.WriteString(styled(string(g.Urgency), urgencyStyles))
		sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%d) %s", g.Count, utils.FormatNOK(g.Value))))
		sb.WriteString("\n")

		t := newTable("  ID", "EMPRESA", "CONTRATO", "RENOVAÇÃO", "DIAS", "VALOR", "PROB.", "STATUS").alignRight(4, 5, 6)
		for _, r := range g.Renewals {
			t.add("  "+r.ID, r.Company, dash(r.ContractType), r.RenewalDate.String(), strconv.Itoa(r.DaysUntil),
				utils.FormatNOK(r.RenewalValue), strconv.Itoa(r.Probability)+"%", styled(string(r.Status), statusStyles))
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

func RenewalDigest(d *domain.RenewalDigest) string {
	var sb strings.Builder
	sb.WriteString(heading("Resumo de renovações · "+string(d.Region),
		"referência "+d.ReferenceDate.String(), "em risco "+utils.FormatNOK(d.AtRiskValue)))

	t := newTable("FAIXA", "QTD", "VALOR").alignRight(1, 2)
	for _, e := range d.Entries {
		t.add(styled(string(e.Urgency), urgencyStyles), strconv.Itoa(e.Count), utils.FormatNOK(e.Value))
	}
	sb.WriteString(t.String())
	return sb.String()
}

func Forecast(v *domain.ForecastView) string {
	var sb strings.Builder
	sb.WriteString(heading("Previsão · "+string(v.Region), "período "+string(v.Period)))

	m := v.Metrics
	sb.WriteString(fmt.Sprintf("Pipeline %s · Ponderado %s · Taxa de ganho %.0f%% · Ticket médio %s · Ganhos/Perdas %d/%d (%.2f)\n\n",
		utils.FormatCompactNOK(m.TotalPipeline), utils.FormatCompactNOK(m.WeightedForecast), m.WinRate,
		utils.FormatCompactNOK(m.AvgDealSize), m.DealsWon, m.DealsLost, v.WinLossRatio))

	t := newTable("MÊS", "PIPELINE", "PONDERADO", "FECHADO", "META", "ATINGIDO").alignRight(1, 2, 3, 4, 5)
	for _, r := range v.Rows {
		attainment := fmt.Sprintf("%.1f%%", r.Attainment)
		if r.MetTarget {
			attainment = upStyle.Render(attainment)
		} else {
			attainment = downStyle.Render(attainment)
		}
		t.add(r.Month, utils.FormatNOK(r.Pipeline), utils.FormatNOK(r.Weighted),
			utils.FormatNOK(r.Closed), utils.FormatNOK(r.Target), attainment)
	}
	tot := v.Totals
	t.add(headerStyle.Render("Total"), utils.FormatNOK(tot.Pipeline), utils.FormatNOK(tot.Weighted),
		utils.FormatNOK(tot.Closed), utils.FormatNOK(tot.Target), fmt.Sprintf("%.1f%%", tot.Attainment))
	sb.WriteString(t.String())
	return sb.String()
}

func Dashboard(v *domain.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(heading("Dashboard · " + string(v.Region)))

	cards := newTable("INDICADOR", "VALOR", "TENDÊNCIA").alignRight(1, 2)
	for _, c := range v.Cards {
		cards.add(c.Title, cardValue(c), trend(c))
	}
	sb.WriteString(cards.String())

	g := v.Goal
	sb.WriteString(fmt.Sprintf("\n%s: %s de %s (%d%%) · faltam %s\n",
		dash(g.Label), utils.FormatNOK(g.Current), utils.FormatNOK(g.Target), g.Percentage, utils.FormatNOK(g.Remaining)))

	if len(v.LeadSources) > 0 {
		sb.WriteString("\n")
		sources := newTable("ORIGEM", "LEADS", "PARTICIPAÇÃO").alignRight(1, 2)
		for _, s := range v.LeadSources {
			sources.add(s.Name, strconv.Itoa(s.Total), fmt.Sprintf("%.1f%%", s.Share))
		}
		sb.WriteString(sources.String())
	}

	if len(v.Meetings) > 0 {
		sb.WriteString("\n")
		meetings := newTable("DATA", "HORA", "REUNIÃO", "EMPRESA", "TIPO")
		for _, m := range v.Meetings {
			meetings.add(m.Date.String(), m.Time, m.Title, m.Company, string(m.Type))
		}
		sb.WriteString(meetings.String())
	}
	return sb.String()
}

func Regions(regions []domain.Region, selected domain.Region) string {
	var sb strings.Builder
	for _, r := range regions {
		marker := "  "
		if r == selected {
			marker = "* "
		}
		sb.WriteString(marker + string(r) + "\n")
	}
	return sb.String()
}

func cardValue(c domain.StatCard) string {
	switch c.Unit {
	case "NOK":
		return utils.FormatCompactNOK(c.Value)
	case "%":
		return fmt.Sprintf("%.1f%%", c.Value)
	case "":
		return strconv.FormatFloat(c.Value, 'f', 0, 64)
	default:
		return strconv.FormatFloat(c.Value, 'f', 0, 64) + " " + c.Unit
	}
}

func trend(c domain.StatCard) string {
	arrow := "▲"
	if c.Trend < 0 {
		arrow = "▼"
	}
	text := fmt.Sprintf("%s %.1f%%", arrow, c.Trend)
	if c.TrendPositive {
		return upStyle.Render(text)
	}
	return downStyle.Render(text)
}
