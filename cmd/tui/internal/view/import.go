package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/importer"
	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/supplier"
)

// OCR of a scanned invoice can take a while.
const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateParsing
	importStateReview
	importStateConfirming
	importStateResult
)

type ImportModel struct {
	importService *importer.Service
	suppliers     *supplier.Service
	ingredients   *ingredient.Service

	state      importState
	filePicker filepicker.Model
	spinner    spinner.Model

	draft   *importer.Draft
	choices *draftChoices
	form    *huh.Form

	status string
	err    error
}

// draftChoices holds what the user picked while reviewing a draft. The
// form writes into it through pointers, so it must outlive model copies.
type draftChoices struct {
	supplier uuid.UUID
	lines    []*lineChoice
	confirm  bool
}

type lineChoice struct {
	ingredient uuid.UUID
	// Scanned invoices have no lines, so these are typed by the user.
	manual      bool
	description string
	quantity    string
	unitPrice   string
}

func NewImportModel(impSvc *importer.Service, supSvc *supplier.Service, ingSvc *ingredient.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".xml", ".pdf", ".png", ".jpg", ".jpeg", ".webp"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return ImportModel{
		importService: impSvc,
		suppliers:     supSvc,
		ingredients:   ingSvc,
		filePicker:    fp,
		spinner:       s,
	}
}

func (m ImportModel) Title() string { return "Import Invoice" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateReview:
		return "Enter: next | Esc: discard draft"
	case importStateParsing, importStateConfirming:
		return "Working..."
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case draftMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.draft = msg.draft
		m.choices = newDraftChoices(msg.draft)
		m.form = buildReviewForm(msg.draft, msg.suppliers, msg.ingredients, m.choices)
		m.state = importStateReview

		return m, m.form.Init()

	case confirmResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = confirmSummary(msg.result)

		return m, nil
	}

	switch m.state {
	case importStateFilePick:
		return m.updateFilePick(msg)
	case importStateReview:
		return m.updateReview(msg)
	case importStateParsing, importStateConfirming:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateReview, importStateResult:
		m.state = importStateFilePick
		m.draft = nil
		m.choices = nil
		m.form = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateParsing, importStateConfirming:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateParsing
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, tea.Batch(m.spinner.Tick, m.parseCmd(path))
	}

	return m, cmd
}

func (m ImportModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.choices.confirm {
		m.state = importStateResult
		m.status = "Draft discarded."

		return m, nil
	}

	params, err := m.choices.params(m.draft)
	if err != nil {
		m.state = importStateResult
		m.err = err
		m.status = fmt.Sprintf("Error: %v", err)

		return m, nil
	}

	m.state = importStateConfirming
	m.status = "Saving purchase..."

	return m, tea.Batch(m.spinner.Tick, m.confirmCmd(params))
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select an invoice (NF-e XML, PDF or image):\n\n" + m.filePicker.View(),
		)
	case importStateParsing, importStateConfirming:
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " " + m.status)
	case importStateReview:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			errorStyle.Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		okStyle.Render(m.status) +
			"\n\n(Esc to import another file)",
	)
}

// Messages

type draftMsg struct {
	draft       *importer.Draft
	suppliers   []*supplier.Supplier
	ingredients []*ingredient.Ingredient
	err         error
}

type confirmResultMsg struct {
	result *importer.ConfirmResult
	err    error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return draftMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		draft, err := m.importService.Parse(ctx, path, data)
		if err != nil {
			return draftMsg{err: err}
		}

		suppliers, err := m.suppliers.List(ctx)
		if err != nil {
			return draftMsg{err: fmt.Errorf("listing suppliers: %w", err)}
		}

		ingredients, err := m.ingredients.List(ctx)
		if err != nil {
			return draftMsg{err: fmt.Errorf("listing ingredients: %w", err)}
		}

		return draftMsg{draft: draft, suppliers: suppliers, ingredients: ingredients}
	}
}

func (m ImportModel) confirmCmd(params importer.ConfirmParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.importService.Confirm(ctx, params)

		return confirmResultMsg{result: result, err: err}
	}
}

func confirmSummary(res *importer.ConfirmResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Pending purchase created: %s, %d items.",
		FormatMoney(res.Purchase.TotalAmount), len(res.Purchase.Items))

	if res.CreatedSupplier != nil {
		fmt.Fprintf(&sb, "\nNew supplier: %s", res.CreatedSupplier.Name)
	}

	if res.Skipped > 0 {
		fmt.Fprintf(&sb, "\n%d lines were not stock items and only count towards the total.", res.Skipped)
	}

	sb.WriteString("\nConfirm it under Pending Purchases to update stock.")

	return sb.String()
}

// Review form

// newDraftChoices preselects what the matcher resolved. Ambiguous matches
// start on their best candidate, unresolved ones on "new"/"skip".
func newDraftChoices(d *importer.Draft) *draftChoices {
	c := &draftChoices{confirm: true}

	if s, ok := first(d.Supplier); ok {
		c.supplier = s.ID
	}

	for _, l := range d.Lines {
		lc := &lineChoice{manual: l.Description == ""}
		if ing, ok := first(l.Ingredient); ok {
			lc.ingredient = ing.ID
		}

		c.lines = append(c.lines, lc)
	}

	return c
}

func first[T any](r matching.Result[T]) (T, bool) {
	if item, ok := r.Resolved(); ok {
		return item, true
	}

	if c := r.Candidates(); len(c) > 0 {
		return c[0], true
	}

	var zero T

	return zero, false
}

func (c *draftChoices) params(d *importer.Draft) (importer.ConfirmParams, error) {
	params := d.ConfirmParams()
	lines := params.Lines
	params.SupplierID = nil
	params.Lines = nil

	if c.supplier != uuid.Nil {
		params.SupplierID = new(c.supplier)
	}

	for i, l := range lines {
		lc := c.lines[i]

		if lc.manual {
			if strings.TrimSpace(lc.description) == "" {
				continue
			}

			q, err := parseDecimal(lc.quantity)
			if err != nil {
				return params, fmt.Errorf("line %d quantity: %w", i+1, err)
			}

			p, err := parseDecimal(lc.unitPrice)
			if err != nil {
				return params, fmt.Errorf("line %d unit price: %w", i+1, err)
			}

			l.Description = strings.TrimSpace(lc.description)
			l.Quantity = q
			l.UnitPrice = p
			l.TotalPrice = nil
		}

		l.IngredientID = nil
		if lc.ingredient != uuid.Nil {
			l.IngredientID = new(lc.ingredient)
		}

		params.Lines = append(params.Lines, l)
	}

	return params, nil
}

// parseDecimal accepts both 12.50 and 12,50.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

func validDecimal(s string) error {
	if _, err := parseDecimal(s); err != nil {
		return fmt.Errorf("enter a number such as 12,50")
	}

	return nil
}

func buildReviewForm(d *importer.Draft, suppliers []*supplier.Supplier, ingredients []*ingredient.Ingredient, c *draftChoices) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewNote().
				Title("Invoice").
				Description(draftSummary(d)),
			huh.NewSelect[uuid.UUID]().
				Title("Supplier " + matchLabel(d.Supplier.Kind())).
				Options(supplierOptions(d, suppliers)...).
				Value(&c.supplier),
		),
	}

	for i, l := range d.Lines {
		lc := c.lines[i]

		var fields []huh.Field
		if lc.manual {
			fields = append(fields,
				huh.NewInput().Title(fmt.Sprintf("Line %d description", i+1)).Value(&lc.description),
				huh.NewInput().Title("Quantity").Placeholder("0").Validate(validDecimal).Value(&lc.quantity),
				huh.NewInput().Title("Unit price").Placeholder("0,00").Validate(validDecimal).Value(&lc.unitPrice),
			)
		}

		title := fmt.Sprintf("Line %d ingredient", i+1)
		if !lc.manual {
			title = fmt.Sprintf("%s  %s x %s %s", l.Description,
				FormatQuantity(l.Quantity), FormatMoney(l.UnitPrice), matchLabel(l.Ingredient.Kind()))
		}

		fields = append(fields, huh.NewSelect[uuid.UUID]().
			Title(title).
			Options(ingredientOptions(l, ingredients)...).
			Value(&lc.ingredient))

		groups = append(groups, huh.NewGroup(fields...))
	}

	confirmTitle := fmt.Sprintf("Create pending purchase of %s?", FormatMoney(d.Total()))
	if d.Source != invoice.KindXML {
		confirmTitle = "Create pending purchase?"
	}

	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title(confirmTitle).
			Affirmative("Create").
			Negative("Discard").
			Value(&c.confirm),
	))

	return huh.NewForm(groups...).WithWidth(80).WithShowHelp(false)
}

func draftSummary(d *importer.Draft) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Source: %s\n", d.Source)

	if d.SupplierName != "" {
		fmt.Fprintf(&sb, "Emitter: %s\n", d.SupplierName)
	}

	if d.SupplierTaxID != "" {
		fmt.Fprintf(&sb, "CNPJ: %s\n", d.SupplierTaxID)
	}

	if d.Number != "" {
		fmt.Fprintf(&sb, "NF-e: %s\n", d.Number)
	}

	fmt.Fprintf(&sb, "Lines: %d  Total: %s", len(d.Lines), FormatMoney(d.Total()))

	return sb.String()
}

func matchLabel(k matching.Kind) string {
	switch k {
	case matching.KindResolved:
		return "(matched)"
	case matching.KindAmbiguous:
		return "(ambiguous, please choose)"
	}

	return "(no match)"
}

func supplierOptions(d *importer.Draft, all []*supplier.Supplier) []huh.Option[uuid.UUID] {
	var (
		opts []huh.Option[uuid.UUID]
		seen = make(map[uuid.UUID]bool)
	)

	add := func(s *supplier.Supplier) {
		if seen[s.ID] {
			return
		}

		seen[s.ID] = true

		label := s.Name
		if s.CNPJ != "" {
			label += " (" + s.CNPJ + ")"
		}

		opts = append(opts, huh.NewOption(label, s.ID))
	}

	if s, ok := d.Supplier.Resolved(); ok {
		add(s)
	}

	for _, s := range d.Supplier.Candidates() {
		add(s)
	}

	name := d.SupplierName
	if name == "" {
		name = supplier.DefaultName
	}

	opts = append(opts, huh.NewOption("New supplier: "+name, uuid.Nil))

	for _, s := range all {
		add(s)
	}

	return opts
}

func ingredientOptions(l *importer.DraftLine, all []*ingredient.Ingredient) []huh.Option[uuid.UUID] {
	var (
		opts []huh.Option[uuid.UUID]
		seen = make(map[uuid.UUID]bool)
	)

	add := func(i *ingredient.Ingredient) {
		if seen[i.ID] {
			return
		}

		seen[i.ID] = true
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", i.Name, i.Unit), i.ID))
	}

	if ing, ok := l.Ingredient.Resolved(); ok {
		add(ing)
	}

	for _, ing := range l.Ingredient.Candidates() {
		add(ing)
	}

	opts = append(opts, huh.NewOption("Not a stock item (skip)", uuid.Nil))

	for _, ing := range all {
		add(ing)
	}

	return opts
}
