package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"learning_path_backend/internal/util"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExportService 把进度行导出为下载文件
type ExportService struct {
	ProgressService *ProgressService
}

func NewExportService(progressService *ProgressService) *ExportService {
	return &ExportService{ProgressService: progressService}
}

// ExportFile 导出内容与响应头信息
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Export 按格式导出进度表
func (s *ExportService) Export(format string) (*ExportFile, error) {
	switch format {
	case util.ExportFormatCSV:
		return s.exportCSV()
	case util.ExportFormatXLSX:
		return s.exportXLSX()
	default:
		return nil, util.ErrUnknownExportFormat
	}
}

func (s *ExportService) exportCSV() (*ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Course", "Completion %", "Status"}); err != nil {
		return nil, err
	}
	for _, row := range s.ProgressService.ExportRows() {
		record := []string{row.Name, strconv.Itoa(row.Completion), string(row.Status)}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportFile{
		Content:     buf.Bytes(),
		ContentType: "text/csv",
		Filename:    "progress.csv",
	}, nil
}

func (s *ExportService) exportXLSX() (*ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Progress"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Course", "Completion %", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range s.ProgressService.ExportRows() {
		values := []interface{}{row.Name, row.Completion, string(row.Status)}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return &ExportFile{
		Content:     buf.Bytes(),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Filename:    "progress.xlsx",
	}, nil
}
