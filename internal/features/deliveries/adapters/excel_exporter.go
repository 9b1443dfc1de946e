package adapters

import (
	"fmt"

	"delivery-map/internal/features/deliveries/domain"

	"github.com/xuri/excelize/v2"
)

// SummarySheet is the sheet name of exported summaries.
const SummarySheet = "Resumen"

// SummaryHeaders are the column titles of the exported summary.
var SummaryHeaders = []interface{}{"Repartidor", "Peso Total (kg)", "Número de Pedidos", "Color"}

// ExcelExporter implements ports.SummaryExporter as an .xlsx workbook.
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes one row per agent, heaviest first, with the agent's color
// as the fill of the last cell, followed by a totals row.
func (e *ExcelExporter) Export(summary domain.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, err
	}

	styles := make(map[string]int)
	for _, a := range summary.Agents {
		if _, ok := styles[a.Hex]; ok {
			continue
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{a.Hex}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create style for %s: %w", a.Hex, err)
		}
		styles[a.Hex] = id
	}

	sw, err := f.NewStreamWriter(SummarySheet)
	if err != nil {
		return nil, err
	}
	if err := sw.SetColWidth(1, 3, 20); err != nil {
		return nil, err
	}

	if err := sw.SetRow("A1", SummaryHeaders); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, a := range summary.Agents {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			a.Agent,
			a.TotalWeight,
			a.Orders,
			excelize.Cell{StyleID: styles[a.Hex], Value: string(a.Color)},
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, err
		}
		rowNum++
	}

	cell, _ := excelize.CoordinatesToCellName(1, rowNum)
	if err := sw.SetRow(cell, []interface{}{"Total", summary.TotalWeight, summary.TotalOrders}); err != nil {
		return nil, err
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
