package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/purchase"
)

var purchaseStatusFilters = []*purchase.Status{
	new(purchase.StatusPending),
	new(purchase.StatusConfirmed),
	new(purchase.StatusCancelled),
	nil,
}

type PurchasesModel struct {
	purchaseService *purchase.Service

	table     table.Model
	purchases []*purchase.Purchase
	detail    *purchase.Purchase

	filterIdx int
	loading   bool
	err       error
	status    string
}

func NewPurchasesModel(svc *purchase.Service) PurchasesModel {
	return PurchasesModel{
		purchaseService: svc,
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Supplier", Width: 30},
			{Title: "NF-e", Width: 12},
			{Title: "Total", Width: 14},
		}),
		loading: true,
	}
}

func (m PurchasesModel) Title() string { return "Purchases" }
func (m PurchasesModel) ShortHelp() string {
	return "Esc: back | Enter: items | c: confirm | x: cancel | s: status filter | r: refresh"
}

func (m PurchasesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PurchasesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPurchasesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.purchases = msg.purchases
		m.detail = nil
		m.refreshTable()

		return m, nil

	case purchaseDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading items: %v", msg.err)
			return m, nil
		}

		m.detail = msg.purchase

		return m, nil

	case purchaseTransitionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Purchase %s.", msg.purchase.Status)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(purchaseStatusFilters)
			m.loading = true

			return m, m.loadCmd()
		case "enter":
			if p := m.selected(); p != nil {
				return m, m.detailCmd(p.ID)
			}

			return m, nil
		case "c":
			if p := m.selected(); p != nil {
				m.status = "Confirming..."
				return m, m.transitionCmd(p.ID, m.purchaseService.Confirm)
			}

			return m, nil
		case "x":
			if p := m.selected(); p != nil {
				m.status = "Cancelling..."
				return m, m.transitionCmd(p.ID, m.purchaseService.Cancel)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PurchasesModel) selected() *purchase.Purchase {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.purchases) {
		return nil
	}

	return m.purchases[idx]
}

func (m PurchasesModel) filterLabel() string {
	if f := purchaseStatusFilters[m.filterIdx]; f != nil {
		return string(*f)
	}

	return "all"
}

func (m PurchasesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading purchases...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(m.filterLabel()))

	tableView := borderStyle.Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.detail != nil {
		panel := panelStyle.Width(56).Render(purchaseDetail(m.detail))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func purchaseDetail(p *purchase.Purchase) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n%s  %s\n\n", p.SupplierName, FormatDate(p.PurchaseDate), p.Status)

	for _, it := range p.Items {
		fmt.Fprintf(&sb, "%s\n  %s x %s = %s\n",
			it.IngredientName, FormatQuantity(it.Quantity), FormatMoney(it.UnitPrice), FormatMoney(it.TotalPrice))
	}

	fmt.Fprintf(&sb, "\nTotal: %s", FormatMoney(p.TotalAmount))

	if p.Notes != "" {
		fmt.Fprintf(&sb, "\n\n%s", p.Notes)
	}

	return sb.String()
}

func (m *PurchasesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.purchases))
	for _, p := range m.purchases {
		rows = append(rows, table.Row{
			FormatDate(p.PurchaseDate),
			string(p.Status),
			p.SupplierName,
			p.NFeNumber,
			FormatMoney(p.TotalAmount),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadPurchasesMsg struct {
	purchases []*purchase.Purchase
	err       error
}

type purchaseDetailMsg struct {
	purchase *purchase.Purchase
	err      error
}

type purchaseTransitionMsg struct {
	purchase *purchase.Purchase
	err      error
}

func (m PurchasesModel) loadCmd() tea.Cmd {
	filter := purchase.ListFilter{Status: purchaseStatusFilters[m.filterIdx]}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		purchases, err := m.purchaseService.List(ctx, filter)

		return loadPurchasesMsg{purchases: purchases, err: err}
	}
}

func (m PurchasesModel) detailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.purchaseService.Get(ctx, id)

		return purchaseDetailMsg{purchase: p, err: err}
	}
}

func (m PurchasesModel) transitionCmd(id uuid.UUID, apply func(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := apply(ctx, id)

		return purchaseTransitionMsg{purchase: p, err: err}
	}
}
