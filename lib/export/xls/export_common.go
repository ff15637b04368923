package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Calibri"

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func setRangeStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int, style *excelize.Style) error {
	styleID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, styleID)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []column) (int, error) {
	row++
	err := setRangeStyle(f, sheet, 1, row, len(headers), row, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
	})
	if err != nil {
		return row, err
	}
	for idx, header := range headers {
		colName, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, colName, colName, header.width); err != nil {
			return row, err
		}
		if err = writeColumn(f, sheet, idx+1, row, header.title); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	return setRangeStyle(f, sheet, colFrom, rowFrom, colTo, rowTo, &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
		Font: &excelize.Font{Family: fontFamily, Size: 11},
	})
}
