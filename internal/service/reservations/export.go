package reservations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
	"github.com/easerve/Grooming-BookingService/pkg/ptr"
)

const exportSheet = "Reservations"

var exportHeader = []string{
	"ID", "Date", "Time", "Pet", "Owner Phone",
	"Service", "Additional Services", "Total Price", "Additional Price", "Status", "Memo",
}

// ExportToExcel выгружает бронирования по фильтру в xlsx файл.
// Файл создаётся в dir, имя содержит дату выгрузки. Возвращает путь к файлу.
func (s *Service) ExportToExcel(ctx context.Context, filter models.ListFilter, dir string) (string, error) {
	views, err := s.List(ctx, filter)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(sheet)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - create style: %v", ErrInternal, err)
	}

	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return "", fmt.Errorf("%w: ExportToExcel - write header: %v", ErrInternal, err)
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastCol, headerStyle); err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - style header: %v", ErrInternal, err)
	}

	for i, v := range views {
		res := v.Reservation
		row := []interface{}{
			res.ID,
			res.Date.Format("2006-01-02"),
			res.Time.String(),
			v.PetName,
			v.OwnerPhone,
			res.ServiceName,
			ptr.Deref(res.AdditionalServices),
			res.TotalPrice,
			res.AdditionalPrice,
			string(res.Status),
			ptr.Deref(res.Memo),
		}
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return "", fmt.Errorf("%w: ExportToExcel - write row %d: %v", ErrInternal, i+2, err)
			}
		}
	}

	if err := f.SetColWidth(exportSheet, "B", "G", 18); err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - set column width: %v", ErrInternal, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - create export dir: %v", ErrInternal, err)
	}

	name := fmt.Sprintf("reservations_%s.xlsx", s.clock.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: ExportToExcel - save file: %v", ErrInternal, err)
	}

	s.logger.Info("reservations.ExportToExcel: %d rows exported to %s", len(views), path)

	return path, nil
}
