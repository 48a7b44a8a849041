package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrNoHeader          = errors.New("planilha sem cabeçalho")
)

// Row is one data line keyed by the header text of its column
type Row map[string]string

// Sheet is the header plus the data rows of the first worksheet. Line
// numbers are 1-based and count the header, matching what users see.
type Sheet struct {
	Headers []string
	Rows    []Row
	Lines   []int
}

// IsSupported reports whether filename has an importable extension
func IsSupported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

// ReadRows reads the first worksheet of an .xlsx, .xls or .csv file
func ReadRows(r io.Reader, filename string) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var table [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		table, err = readXLSX(data)
	case ".xls":
		table, err = readXLS(data)
	case ".csv":
		table, err = readCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return toSheet(table)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo .xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	// raw values keep numbers and date serials unformatted
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo .xls: %w", err)
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, ErrNoHeader
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}

	var table [][]string
	for _, row := range sheet.GetRows() {
		var line []string
		for _, cell := range row.GetCols() {
			line = append(line, cell.GetString())
		}
		table = append(table, line)
	}
	return table, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo .csv: %w", err)
	}
	return table, nil
}

// sniffDelimiter picks ';' when the header line has more semicolons than
// commas, the usual layout of spreadsheets saved with a Brazilian locale
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}
	return ','
}

func toSheet(table [][]string) (*Sheet, error) {
	headerAt := -1
	for i, line := range table {
		if !blank(line) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrNoHeader
	}

	headers := make([]string, len(table[headerAt]))
	for i, h := range table[headerAt] {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	for i := headerAt + 1; i < len(table); i++ {
		line := table[i]
		if blank(line) {
			continue
		}
		row := Row{}
		for c, h := range headers {
			if h == "" {
				continue
			}
			if c < len(line) {
				row[h] = strings.TrimSpace(line[c])
			} else {
				row[h] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
		sheet.Lines = append(sheet.Lines, i+1)
	}
	return sheet, nil
}

func blank(line []string) bool {
	for _, v := range line {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
