package httpapi

import (
	"bytes"
	"fmt"
	"time"

	"mavita-score/internal/models"

	"github.com/xuri/excelize/v2"
)

// ScoresExportHeader 指标导出表头
var ScoresExportHeader = []string{
	"Indicator",
	"Title",
	"Primary",
	"Score",
	"Max Score",
	"Band",
	"Color",
	"Updated At",
}

// GenerateScoresExport 生成指标导出 Excel 文件（按指标顺序一行一个）
func GenerateScoresExport(results []models.IndicatorResult) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Scores"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ScoresExportHeader {
		if err := setCellValue(f, sheetName, col+1, 1, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header %s: %w", header, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(ScoresExportHeader), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "B", 22); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "H", "H", 24); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range results {
		row := i + 2
		values := []any{
			r.ID,
			r.Title,
			r.Primary,
			r.Score,
			r.MaxScore,
			r.Band.Label,
			r.Band.Color,
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			if err := setCellValue(f, sheetName, col+1, row, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, col+1, err)
			}
		}

		// 分档颜色填充 Band 列
		bandStyle, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{r.Band.Color}, Pattern: 1},
		})
		if err == nil {
			cell, _ := excelize.CoordinatesToCellName(6, row)
			_ = f.SetCellStyle(sheetName, cell, cell, bandStyle)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
