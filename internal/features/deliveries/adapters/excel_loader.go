package adapters

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"delivery-map/internal/core/config"
	"delivery-map/internal/core/logger"
	"delivery-map/internal/core/table"
	"delivery-map/internal/features/deliveries/domain"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// maxXLSRows bounds legacy workbooks, which report their size in 16 bits.
const maxXLSRows = 65536

var errNoWorksheet = errors.New("no worksheet found")

// ExcelLoader implements ports.DatasetLoader over two workbooks on disk.
// .xls files are read with extrame/xls, everything else with excelize.
type ExcelLoader struct {
	pointsOfSalePath string
	ordersPath       string
}

// NewExcelLoader creates a new ExcelLoader.
func NewExcelLoader(cfg config.DatasetConfig) *ExcelLoader {
	return &ExcelLoader{
		pointsOfSalePath: cfg.PointsOfSalePath,
		ordersPath:       cfg.OrdersPath,
	}
}

// Load reads both workbooks and parses the service dates. Any failure,
// including a panic in the spreadsheet readers, is returned as a
// *domain.LoadError.
func (l *ExcelLoader) Load() (ds *domain.Dataset, err error) {
	source := l.pointsOfSalePath
	defer func() {
		if r := recover(); r != nil {
			ds = nil
			err = &domain.LoadError{Source: source, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	pos, err := readTable(source)
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: err}
	}

	source = l.ordersPath
	orders, err := readTable(source)
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: err}
	}

	for _, col := range domain.RequiredOrderColumns {
		if !orders.Has(col) {
			return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("missing column %q", col)}
		}
	}

	orders = orders.Convert(domain.ColServiceDate, table.KindTime, parseServiceDate)

	logger.Get().Debug("Spreadsheets loaded",
		zap.String("points_of_sale_file", l.pointsOfSalePath),
		zap.Int("points_of_sale", pos.Len()),
		zap.String("orders_file", l.ordersPath),
		zap.Int("orders", orders.Len()),
	)

	return &domain.Dataset{PointsOfSale: pos, Orders: orders}, nil
}

func readTable(path string) (*table.Table, error) {
	sh, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	return table.FromSheet(sh.rows, sh.text)
}

// rawSheet is the content of a first worksheet. text reports the cells
// stored as strings when the format records it, nil otherwise.
type rawSheet struct {
	rows [][]string
	text func(row, col int) bool
}

func readSheet(path string) (rawSheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		rows, err := readXLS(path)
		return rawSheet{rows: rows}, err
	default:
		return readXLSX(path)
	}
}

func readXLSX(path string) (rawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return rawSheet{}, err
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return rawSheet{}, errNoWorksheet
	}

	// Raw values keep dates as serial numbers instead of locale formatted text.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return rawSheet{}, err
	}

	// Codes such as "007" only survive if string cells stay text.
	text := make(map[[2]int]bool)
	for r := 1; r < len(rows); r++ {
		for c, v := range rows[r] {
			if strings.TrimSpace(v) == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return rawSheet{}, err
			}
			typ, err := f.GetCellType(sheet, name)
			if err != nil {
				return rawSheet{}, err
			}
			switch typ {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
				text[[2]int{r, c}] = true
			}
		}
	}

	return rawSheet{
		rows: rows,
		text: func(row, col int) bool { return text[[2]int{row, col}] },
	}, nil
}

// readXLS returns the cells of the first sheet of a legacy workbook. The
// reader renders numbers in date formats as "YYYY.MM", dropping the day;
// such service dates are blanked rather than guessed.
func readXLS(path string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, errNoWorksheet
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errNoWorksheet
	}

	var rows [][]string
	width, dateCol, lossy := 0, -1, 0
	for i := 0; i <= int(sheet.MaxRow) && i < maxXLSRows; i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, max(row.LastCol(), width))
		for c := range cells {
			cells[c] = row.Col(c)
		}
		if len(rows) == 0 {
			width = len(cells)
			for c, name := range cells {
				if strings.TrimSpace(name) == domain.ColServiceDate {
					dateCol = c
				}
			}
		} else if dateCol >= 0 && dateCol < len(cells) && monthOnly(cells[dateCol]) {
			cells[dateCol] = ""
			lossy++
		}
		rows = append(rows, cells)
	}

	if lossy > 0 {
		logger.Get().Warn("Service dates without a day were ignored",
			zap.String("file", path),
			zap.Int("cells", lossy),
		)
	}
	return rows, nil
}

// xlsRow returns row i, or nil when the sheet has no record for it.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// monthOnly matches the "2006.01" rendering of date formatted numbers.
func monthOnly(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[4] != '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i != 4 && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}
