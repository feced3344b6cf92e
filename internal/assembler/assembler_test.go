package assembler

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

// fixedAssembler stamps every file with a known Santiago-time instant.
func fixedAssembler(t *testing.T) *Assembler {
	t.Helper()
	a := New(logging.NewMockLogger(), "America/Santiago")
	a.now = func() time.Time {
		return time.Date(2024, 7, 9, 18, 30, 45, 0, time.UTC)
	}
	return a
}

func sampleConfirmations() []models.Confirmation {
	return []models.Confirmation{
		{RutEmisor: "76.939.541-5", TipoDocumento: "33", Folio: "111111", MontoAPagar: 1000, FechaAPagar: "01-07-2024", Sociedad: "A"},
		{RutEmisor: "96.800.570-7", TipoDocumento: "34", Folio: "222222", MontoAPagar: 2000, FechaAPagar: "02-07-2024", Sociedad: "A"},
		{RutEmisor: "11.111.111-1", TipoDocumento: "33", Folio: "333333", MontoAPagar: 3000, FechaAPagar: "03-07-2024", Sociedad: "B"},
	}
}

func TestUnified(t *testing.T) {
	a := fixedAssembler(t)

	file, err := a.Unified("saesa", sampleConfirmations())
	require.NoError(t, err)

	// 18:30:45 UTC is 14:30:45 in Santiago during July (UTC-4).
	assert.Equal(t, "confirmacion_saesa_unificado_2024_07_09_14_30_45.xlsx", file.Name)

	table, err := spreadsheet.Read(bytes.NewReader(file.Data))
	require.NoError(t, err)
	assert.Equal(t, models.UnifiedHeaders(), table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"76.939.541-5", "33", "111111", "1000", "01-07-2024", "A"}, table.Rows[0])
	assert.Equal(t, "B", table.Rows[2][5], "row order preserved")
}

func TestUnifiedName(t *testing.T) {
	a := fixedAssembler(t)

	assert.Equal(t, "confirmacion_innova_unificado_2024_07_09_14_30_45.csv", a.UnifiedName("innova", "csv"))
}

func TestUnifiedEmptyStillProducesWorkbook(t *testing.T) {
	a := fixedAssembler(t)

	file, err := a.Unified("saesa", nil)
	require.NoError(t, err)

	table, err := spreadsheet.Read(bytes.NewReader(file.Data))
	require.NoError(t, err)
	assert.Equal(t, models.UnifiedHeaders(), table.Headers)
	assert.Empty(t, table.Rows)
}

func TestPerSociedad(t *testing.T) {
	a := fixedAssembler(t)

	file, err := a.PerSociedad("saesa", sampleConfirmations())
	require.NoError(t, err)
	assert.Equal(t, "confirmacion_saesa_por_sociedad_2024_07_09_14_30_45.zip", file.Name)

	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	assert.Equal(t, "confirmacion_saesa_A_2024_07_09_14_30_45.xlsx", zr.File[0].Name,
		"groups keep first-seen order")
	assert.Equal(t, "confirmacion_saesa_B_2024_07_09_14_30_45.xlsx", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	table, err := spreadsheet.Read(rc)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentHeaders(), table.Headers, "entity column is dropped")
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "111111", table.Rows[0][2])
	assert.Equal(t, "222222", table.Rows[1][2], "rows keep input order within the group")
}

func TestPerSociedadNoGroups(t *testing.T) {
	a := fixedAssembler(t)

	_, err := a.PerSociedad("saesa", nil)
	require.Error(t, err)

	var emptyErr *parsererror.EmptyAfterFilterError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, parsererror.CheckpointPartition, emptyErr.Checkpoint)
}

func TestEntryNameSanitized(t *testing.T) {
	a := fixedAssembler(t)

	confirmations := []models.Confirmation{
		{RutEmisor: "1-9", TipoDocumento: "33", Folio: "1", Sociedad: " Empresa / Matriz \\ Sur "},
	}
	file, err := a.PerSociedad("pasmar", confirmations)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "confirmacion_pasmar_Empresa - Matriz - Sur_2024_07_09_14_30_45.xlsx", zr.File[0].Name)
}

func TestNewUnknownTimezoneFallsBack(t *testing.T) {
	logger := logging.NewMockLogger()
	a := New(logger, "Mars/Olympus")
	require.NotNil(t, a)
	assert.True(t, logger.HasEntry("WARN", "Unknown timezone, falling back to local"))

	file, err := a.Unified("saesa", sampleConfirmations())
	require.NoError(t, err)
	assert.NotEmpty(t, file.Name)
}

func TestGroupBySociedad(t *testing.T) {
	groups, order := groupBySociedad(sampleConfirmations())
	assert.Equal(t, []string{"A", "B"}, order)
	assert.Len(t, groups["A"], 2)
	assert.Len(t, groups["B"], 1)

	groups, order = groupBySociedad(nil)
	assert.Empty(t, order)
	assert.Empty(t, groups)
}
