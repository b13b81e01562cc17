package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fornada/fornada/internal/ingredient"
)

type StockModel struct {
	ingredientService *ingredient.Service

	table       table.Model
	ingredients []*ingredient.Ingredient

	showAll bool
	loading bool
	err     error
}

func NewStockModel(svc *ingredient.Service) StockModel {
	return StockModel{
		ingredientService: svc,
		table: newTable([]table.Column{
			{Title: "Ingredient", Width: 30},
			{Title: "Unit", Width: 6},
			{Title: "Stock", Width: 12},
			{Title: "Minimum", Width: 12},
			{Title: "Cost/unit", Width: 14},
		}),
		loading: true,
	}
}

func (m StockModel) Title() string { return "Stock" }
func (m StockModel) ShortHelp() string {
	return "Esc: back | a: toggle low/all | r: refresh"
}

func (m StockModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m StockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStockMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.ingredients = msg.ingredients
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			m.showAll = !m.showAll
			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m StockModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading stock...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := "low stock"
	if m.showAll {
		label = "all"
	}

	header := fmt.Sprintf("Showing: [a] %s (%d)", activeStyle(label), len(m.ingredients))

	if len(m.ingredients) == 0 && !m.showAll {
		header += "\n\nNothing below its minimum."
	}

	tableView := borderStyle.Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	))
}

func (m *StockModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.ingredients))
	for _, ing := range m.ingredients {
		name := ing.Name
		if m.showAll && ing.LowStock() {
			name = "! " + name
		}

		rows = append(rows, table.Row{
			name,
			ing.Unit,
			FormatQuantity(ing.CurrentStock),
			FormatQuantity(ing.MinStock),
			FormatMoney(ing.CostPerUnit),
		})
	}

	m.table.SetRows(rows)
}

type loadStockMsg struct {
	ingredients []*ingredient.Ingredient
	err         error
}

func (m StockModel) loadCmd() tea.Cmd {
	all := m.showAll

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var (
			list []*ingredient.Ingredient
			err  error
		)

		if all {
			list, err = m.ingredientService.List(ctx)
		} else {
			list, err = m.ingredientService.LowStock(ctx)
		}

		return loadStockMsg{ingredients: list, err: err}
	}
}
