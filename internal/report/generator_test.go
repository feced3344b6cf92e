package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"pverdugo/confirma-pagos/internal/logging"
	"pverdugo/confirma-pagos/internal/models"
)

func sampleReport() *models.Report {
	r := models.NewReport("saesa")
	r.InputRows = 10
	r.OutputRows = 7
	r.Dropped = models.DropCounts{
		MissingReference:   1,
		HyphenReference:    1,
		UnresolvedSociedad: 1,
	}
	return r
}

func TestGenerator_Generate_JSON(t *testing.T) {
	logger := logging.NewLogrusAdapter("info", "text")
	generator := NewGenerator(logger)
	r := sampleReport()

	jsonBytes, err := generator.Generate(r, "json")
	assert.NoError(t, err)
	assert.NotNil(t, jsonBytes)

	var decoded models.Report
	err = json.Unmarshal(jsonBytes, &decoded)
	assert.NoError(t, err)

	assert.Equal(t, r.ReportID, decoded.ReportID)
	assert.Equal(t, "saesa", decoded.Feed)
	assert.Equal(t, 10, decoded.InputRows)
	assert.Equal(t, 7, decoded.OutputRows)
	assert.Equal(t, r.Dropped, decoded.Dropped)
}

func TestGenerator_Generate_YAML(t *testing.T) {
	logger := logging.NewLogrusAdapter("info", "text")
	generator := NewGenerator(logger)
	r := sampleReport()

	yamlBytes, err := generator.Generate(r, "yaml")
	assert.NoError(t, err)
	assert.NotNil(t, yamlBytes)

	var decoded models.Report
	err = yaml.Unmarshal(yamlBytes, &decoded)
	assert.NoError(t, err)

	assert.Equal(t, r.ReportID, decoded.ReportID)
	assert.Equal(t, "saesa", decoded.Feed)
	assert.Equal(t, r.Dropped, decoded.Dropped)
}

func TestGenerator_Generate_UnsupportedFormat(t *testing.T) {
	generator := NewGenerator(nil)

	_, err := generator.Generate(sampleReport(), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}

func TestGenerator_Generate_EmptyReport(t *testing.T) {
	generator := NewGenerator(nil)
	r := models.NewReport("pasmar")

	jsonBytes, err := generator.Generate(r, "json")
	assert.NoError(t, err)

	var decoded models.Report
	err = json.Unmarshal(jsonBytes, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, 0, decoded.InputRows)
	assert.Equal(t, 0, decoded.Dropped.Total())
}

func TestSummary(t *testing.T) {
	r := sampleReport()
	s := Summary(r)

	assert.Contains(t, s, "saesa")
	assert.Contains(t, s, "10 rows in")
	assert.Contains(t, s, "7 confirmations out")
	assert.Contains(t, s, "3 dropped")
	assert.Contains(t, s, "credit-note=1")
}
