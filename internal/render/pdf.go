// Package render produces the printable devis documents (PDF and XLSX)
// from a priced quote. Both renderers refuse an empty line list with
// devis.ErrNoLines so callers can prompt for input instead of emitting a
// degenerate document.
package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"devia/internal/cli"
	"devia/internal/devis"
)

// PDF renders a quote as an A4 devis and returns the document bytes.
func PDF(q devis.Quote) ([]byte, error) {
	if len(q.Lines) == 0 {
		return nil, devis.ErrNoLines
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, q)
	addLineTableHeader(m)
	for _, l := range q.Lines {
		addLineRow(m, l)
	}
	addTotals(m, q)
	addTerms(m, q.Terms)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating devis pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// addHeader writes the issuer block, the devis number/date, and the
// client block.
func addHeader(m core.Maroto, q devis.Quote) {
	muted := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(q.Company.Name, props.Text{Size: 14, Style: fontstyle.Bold}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(q.Company.Address, props.Text{Size: 9, Color: muted}),
			),
		),
	)
	if q.Company.SIRET != "" {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(
				text.New("SIRET : "+q.Company.SIRET, props.Text{Size: 9, Color: muted}),
			),
		))
	}
	if q.Company.Phone != "" {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(
				text.New("Tél : "+q.Company.Phone, props.Text{Size: 9, Color: muted}),
			),
		))
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New("DEVIS n° "+q.Number, props.Text{Size: 12, Style: fontstyle.Bold}),
			),
			col.New(6).Add(
				text.New("Date : "+q.Date.Format("02/01/2006"), props.Text{Size: 10, Align: align.Right}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Client : "+q.Client.Name, props.Text{Size: 10}),
			),
		),
	)
	if q.Client.Address != "" {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(
				text.New("Adresse : "+q.Client.Address, props.Text{Size: 10}),
			),
		))
	}
	m.AddRows(row.New(4))
}

func addLineTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Désignation", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Qté", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("PU HT", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total HT", headerText)).WithStyle(&headerCell),
		),
	)
}

func addLineRow(m core.Maroto, l devis.LineItem) {
	base := props.Text{Size: 9, Align: align.Right}
	left := base
	left.Align = align.Left

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(l.Label, left)),
			col.New(2).Add(text.New(cli.FormatQty(l.Qty, l.Unit), base)),
			col.New(2).Add(text.New(cli.FormatEUR(l.UnitPrice), base)),
			col.New(2).Add(text.New(cli.FormatEUR(l.Total()), base)),
		),
	)
}

func addTotals(m core.Maroto, q devis.Quote) {
	t := q.Totals()
	bg := &props.Color{Red: 240, Green: 240, Blue: 240}
	cell := props.Cell{BackgroundColor: bg}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(row.New(4))
	totalRow := func(name string, amount string) core.Row {
		return row.New(7).Add(
			col.New(9).Add(text.New(name, label)).WithStyle(&cell),
			col.New(3).Add(text.New(amount, value)).WithStyle(&cell),
		)
	}
	m.AddRows(
		totalRow("Sous-total HT", cli.FormatEUR(t.Subtotal)),
		totalRow(fmt.Sprintf("TVA (%d%%)", q.VATRate), cli.FormatEUR(t.VAT)),
		totalRow("Total TTC", cli.FormatEUR(t.Total)),
	)
}

func addTerms(m core.Maroto, terms string) {
	if terms == "" {
		return
	}
	m.AddRows(row.New(8))
	m.AddRows(row.New(12).Add(
		col.New(12).Add(
			text.New(terms, props.Text{
				Size:  8,
				Align: align.Left,
				Color: &props.Color{Red: 90, Green: 90, Blue: 90},
			}),
		),
	))
}
