package services

import (
	"testing"

	"github.com/resicare/resicare-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSubscriptionsToExcel(t *testing.T) {
	subs := []models.SubscriptionResponse{
		{
			ID:       "SUB-1756461600000",
			PlanID:   "premium",
			PlanName: "premium",
			Price:    24.90,
			Customer: models.CustomerData{
				Name:  "María García",
				Email: "maria@example.com",
			},
			Status:      models.SubscriptionStatusActive,
			StartDate:   "2026-08-29T10:00:00Z",
			NextPayment: "2026-09-28T10:00:00Z",
		},
	}

	buf, err := NewExportService().SubscriptionsToExcel(subs)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Subscriptions")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "SUB-1756461600000", rows[1][0])
	assert.Equal(t, "premium", rows[1][1])
	assert.Equal(t, "María García", rows[1][3])
	assert.Equal(t, "maria@example.com", rows[1][4])
}

func TestSubscriptionsToExcelEmpty(t *testing.T) {
	buf, err := NewExportService().SubscriptionsToExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Subscriptions")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
