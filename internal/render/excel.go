package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"devia/internal/cli"
	"devia/internal/devis"
)

// Excel renders a quote as a one-sheet XLSX workbook and returns the file
// bytes.
func Excel(q devis.Quote) ([]byte, error) {
	if len(q.Lines) == 0 {
		return nil, devis.ErrNoLines
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Devis " + q.Number
	if len(sheet) > 31 {
		sheet = sheet[:31]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	widths := []float64{46, 12, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 15},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	row := 1
	set := func(col string, v any) {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}
	setStyled := func(col string, v any, style int) {
		ref := fmt.Sprintf("%s%d", col, row)
		f.SetCellValue(sheet, ref, v)
		f.SetCellStyle(sheet, ref, ref, style)
	}

	// Issuer and quote header.
	setStyled("A", sanitizeCell(q.Company.Name), titleStyle)
	row++
	set("A", sanitizeCell(q.Company.Address))
	row++
	if q.Company.SIRET != "" {
		set("A", "SIRET : "+sanitizeCell(q.Company.SIRET))
		row++
	}
	row++
	set("A", "DEVIS n° "+sanitizeCell(q.Number))
	set("D", "Date : "+q.Date.Format("02/01/2006"))
	row++
	set("A", "Client : "+sanitizeCell(q.Client.Name))
	row++
	if q.Client.Address != "" {
		set("A", "Adresse : "+sanitizeCell(q.Client.Address))
		row++
	}
	row++

	// Line table.
	for i, h := range []string{"Désignation", "Qté", "PU HT", "Total HT"} {
		setStyled(columns[i], h, headerStyle)
	}
	row++
	for _, l := range q.Lines {
		setStyled("A", sanitizeCell(l.Label), cellStyle)
		setStyled("B", cli.FormatQty(l.Qty, l.Unit), cellStyle)
		setStyled("C", cli.FormatEUR(l.UnitPrice), cellStyle)
		setStyled("D", cli.FormatEUR(l.Total()), cellStyle)
		row++
	}
	row++

	// Totals.
	t := q.Totals()
	setStyled("C", "Sous-total HT :", totalStyle)
	setStyled("D", cli.FormatEUR(t.Subtotal), totalStyle)
	row++
	setStyled("C", fmt.Sprintf("TVA (%d%%) :", q.VATRate), totalStyle)
	setStyled("D", cli.FormatEUR(t.VAT), totalStyle)
	row++
	setStyled("C", "Total TTC :", totalStyle)
	setStyled("D", cli.FormatEUR(t.Total), totalStyle)
	row += 2

	if q.Terms != "" {
		set("A", sanitizeCell(q.Terms))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell prevents formula injection: Excel treats cells starting
// with =, +, -, @, tab or CR as formulas.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
