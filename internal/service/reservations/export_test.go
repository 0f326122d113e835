package reservations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

func TestExportToExcel(t *testing.T) {
	f := newServiceFixture()
	dir := t.TempDir()

	path, err := f.service.ExportToExcel(context.Background(), models.ListFilter{}, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, "reservations_20251128_120000.xlsx", filepath.Base(path))

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2) // заголовок + одно активное бронирование

	assert.Equal(t, exportHeader, rows[0])

	row := rows[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "2025-11-29", row[1])
	assert.Equal(t, "10:00", row[2])
	assert.Equal(t, "Bori", row[3])
	assert.Equal(t, "010-1234-5678", row[4])
	assert.Equal(t, "Grooming, Face Trim", row[5])
	assert.Equal(t, "45000", row[7])
	assert.Equal(t, "waiting", row[9])
}

func TestExportToExcelIncludesCancelled(t *testing.T) {
	f := newServiceFixture()
	dir := t.TempDir()

	path, err := f.service.ExportToExcel(context.Background(), models.ListFilter{IncludeCancelled: true}, dir)
	require.NoError(t, err)

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(exportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportToExcelInvalidFilter(t *testing.T) {
	f := newServiceFixture()

	status := domain.ReservationStatus("pending")
	_, err := f.service.ExportToExcel(context.Background(), models.ListFilter{Status: &status}, t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
