package services

import (
	"bytes"
	"fmt"

	"github.com/resicare/resicare-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a session's subscriptions as an Excel workbook.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// SubscriptionsToExcel builds an xlsx with one row per subscription.
func (s *ExportService) SubscriptionsToExcel(subs []models.SubscriptionResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Subscriptions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Plan", "Price", "Customer", "Email", "Status", "Start Date", "Next Payment"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", lastCell, headerStyle)
	}

	for i, sub := range subs {
		row := i + 2
		values := []any{
			sub.ID,
			sub.PlanName,
			sub.Price,
			sub.Customer.Name,
			sub.Customer.Email,
			sub.Status,
			sub.StartDate,
			sub.NextPayment,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
