package reservoir

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture(t *testing.T) *Collection {
	t.Helper()
	c := NewCollection()
	require.NoError(t, c.Add(mustRecord(t, "Svitiaz", "Lake", 2.5, 9.2, 58.4)))
	require.NoError(t, c.Add(mustRecord(t, "Azov", "Sea", 135, 380, 14)))
	return c
}

func TestExportText(t *testing.T) {
	c := reportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, c.ExportText(&buf, EnglishLabels))
	want := "Number of reservoirs: 2\n" +
		"Reservoir 1:\n" +
		"Svitiaz Lake 2.5 9.2 58.4\n" +
		"Reservoir 2:\n" +
		"Azov Sea 135 380 14\n"
	assert.Equal(t, want, buf.String())
}

func TestExportBinary(t *testing.T) {
	c := reportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, c.ExportBinary(&buf))
	want := "Count: 2\n" +
		"Record 0: Svitiaz\n" +
		"Record 1: Azov\n"
	assert.Equal(t, want, buf.String())
}

func TestExport_EmptyCollection(t *testing.T) {
	c := NewCollection()

	var text, bin bytes.Buffer
	require.NoError(t, c.ExportText(&text, EnglishLabels))
	require.NoError(t, c.ExportBinary(&bin))
	assert.Equal(t, "Number of reservoirs: 0\n", text.String())
	assert.Equal(t, "Count: 0\n", bin.String())
}

func TestReport_Dispatch(t *testing.T) {
	c := reportFixture(t)

	var viaReport, direct bytes.Buffer
	require.NoError(t, c.Report(ReportBinary, &viaReport, EnglishLabels))
	require.NoError(t, c.ExportBinary(&direct))
	assert.Equal(t, direct.String(), viaReport.String())

	assert.Error(t, c.Report(ReportFormat("csv"), &viaReport, EnglishLabels))
}
