package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
	"pverdugo/confirma-pagos/internal/parsererror"
	"pverdugo/confirma-pagos/internal/spreadsheet"
)

func positionalSpec() PositionalSpec {
	return PositionalSpec{
		Feed:       "pasmar",
		MinColumns: 12,
		Slots: Slots{
			Amount:       2,
			Folio:        3,
			DueDate:      4,
			Issuer:       6,
			SociedadCode: 10,
			SociedadName: 11,
		},
		DocumentType: "33",
		Allow: func(name string) bool {
			return strings.TrimSpace(name) == "Comercial Austral S.A."
		},
	}
}

// positionalRow builds a 12-column row with the pipeline's slots filled in.
func positionalRow(amount, folio, dueDate, issuer, code, name string) []string {
	row := make([]string, 12)
	row[0] = "local 104"
	row[1] = "arriendo"
	row[2] = amount
	row[3] = folio
	row[4] = dueDate
	row[5] = "CLP"
	row[6] = issuer
	row[10] = code
	row[11] = name
	return row
}

func positionalTable(rows ...[]string) *spreadsheet.Table {
	headers := make([]string, 12)
	for i := range headers {
		headers[i] = "col"
	}
	return &spreadsheet.Table{Headers: headers, Rows: rows}
}

func TestRunPositionalNormalizesCompleteRow(t *testing.T) {
	table := positionalTable(
		positionalRow("$ 1.500.000", "789123.0", "2024-07-09", "77.123.456-7", "96.840.470-9", "  Comercial Austral S.A.  "),
	)

	confirmations, report, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, confirmations, 1)

	expected := models.Confirmation{
		RutEmisor:     "77.123.456-7",
		TipoDocumento: "33",
		Folio:         "789123",
		MontoAPagar:   1500000,
		FechaAPagar:   "09-07-2024",
		Sociedad:      "96840470-9",
	}
	assert.Equal(t, expected, confirmations[0])
	assert.Equal(t, 1, report.OutputRows)
}

func TestRunPositionalTooFewColumns(t *testing.T) {
	table := &spreadsheet.Table{
		Headers: make([]string, 10),
		Rows:    [][]string{make([]string, 10)},
	}

	_, _, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.Error(t, err)

	var schemaErr *parsererror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "pasmar", schemaErr.Feed)
	assert.Contains(t, schemaErr.Error(), "expected at least 12 columns, found 10")
}

func TestRunPositionalFiltersByAllowList(t *testing.T) {
	table := positionalTable(
		positionalRow("100", "111", "2024-01-01", "11.111.111-1", "96.840.470-9", "Comercial Austral S.A."),
		positionalRow("200", "222", "2024-01-02", "22.222.222-2", "96.840.470-9", "Otra Empresa Ltda."),
		positionalRow("300", "333", "2024-01-03", "33.333.333-3", "96.840.470-9", "Comercial Austral S.A."),
	)

	confirmations, report, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, confirmations, 2)
	assert.Equal(t, "111", confirmations[0].Folio, "row order is preserved")
	assert.Equal(t, "333", confirmations[1].Folio)
	assert.Equal(t, 1, report.Dropped.UnresolvedSociedad)
}

func TestRunPositionalAllRowsOutsideAllowList(t *testing.T) {
	table := positionalTable(
		positionalRow("100", "111", "2024-01-01", "11.111.111-1", "96.840.470-9", "Otra Empresa Ltda."),
	)

	_, _, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.Error(t, err)

	var emptyErr *parsererror.EmptyAfterFilterError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, parsererror.CheckpointSociedad, emptyErr.Checkpoint)
}

func TestRunPositionalDropsRowsMissingRequiredFields(t *testing.T) {
	table := positionalTable(
		positionalRow("100", "", "2024-01-01", "11.111.111-1", "96.840.470-9", "Comercial Austral S.A."),
		positionalRow("200", "222", "2024-01-02", "", "96.840.470-9", "Comercial Austral S.A."),
		positionalRow("300", "333", "2024-01-03", "33.333.333-3", "", "Comercial Austral S.A."),
		positionalRow("400", "444", "2024-01-04", "44.444.444-4", "96.840.470-9", "Comercial Austral S.A."),
	)

	confirmations, report, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, confirmations, 1)
	assert.Equal(t, "444", confirmations[0].Folio)
	assert.Equal(t, 3, report.Dropped.MissingRequired,
		"empty folio, issuer and entity code are each dropped")
}

func TestRunPositionalAllRowsMissingRequiredFields(t *testing.T) {
	table := positionalTable(
		positionalRow("100", "", "2024-01-01", "11.111.111-1", "96.840.470-9", "Comercial Austral S.A."),
	)

	_, _, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.Error(t, err)

	var emptyErr *parsererror.EmptyAfterFilterError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, parsererror.CheckpointRequired, emptyErr.Checkpoint)
}

func TestRunPositionalKeepsHyphenatedFolios(t *testing.T) {
	table := positionalTable(
		positionalRow("100", "123-456", "2024-01-01", "11.111.111-1", "96.840.470-9", "Comercial Austral S.A."),
	)

	confirmations, _, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, confirmations, 1)
	assert.Equal(t, "123-456", confirmations[0].Folio,
		"this feed has no credit-note filter")
}

func TestRunPositionalShortRowsStayInBounds(t *testing.T) {
	table := positionalTable(
		[]string{"local", "arriendo", "100"},
	)

	_, report, err := RunPositional(table, positionalSpec(), logging.NewMockLogger())
	require.Error(t, err, "short row has no entity name, so everything is filtered")
	assert.Equal(t, 1, report.Dropped.UnresolvedSociedad)
}
