package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/lake-extent-dashboard/internal/adapter/export"
	"github.com/couchcryptid/lake-extent-dashboard/internal/mockdata"
)

func TestWriteComparisonCSV(t *testing.T) {
	lakes := mockdata.Lakes()
	var buf bytes.Buffer
	require.NoError(t, export.WriteComparisonCSV(&buf, lakes))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(lakes)+1)
	assert.Equal(t, []string{"name", "area_2020", "area_2024", "change", "trend"}, rows[0])
	assert.Equal(t, []string{"Lake Abaya", "1160", "1140", "-1.7", "declining"}, rows[2])
}

func TestWriteComparisonXLSX(t *testing.T) {
	lakes := mockdata.Lakes()
	var buf bytes.Buffer
	require.NoError(t, export.WriteComparisonXLSX(&buf, lakes))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(lakes)+1)
	assert.Equal(t, []string{"name", "area_2020", "area_2024", "change", "trend"}, rows[0])
	assert.Equal(t, "Lake Abaya", rows[2][0])
	assert.Equal(t, "-1.7", rows[2][3])

	cellType, err := f.GetCellType(export.SheetName, "B3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)

	styleID, err := f.GetCellStyle(export.SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestWriteComparisonCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteComparisonCSV(&buf, nil))
	assert.Equal(t, "name,area_2020,area_2024,change,trend\n", buf.String())
}
