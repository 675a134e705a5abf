package rf2_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snograph/snograph/rf2"
)

const relationshipHeader = "id\teffectiveTime\tactive\tmoduleId\tsourceId\tdestinationId\trelationshipGroup\ttypeId\tcharacteristicTypeId\tmodifierId"

func row(id, active, sourceID, destinationID, group, typeID, characteristicID string) string {
	return strings.Join([]string{
		id, "20240101", active, "900000000000207008",
		sourceID, destinationID, group, typeID,
		characteristicID, "900000000000451002",
	}, "\t")
}

func parseAll(t *testing.T, input string) []rf2.Relationship {
	t.Helper()
	var rows []rf2.Relationship
	err := rf2.NewParser().ParseReader(strings.NewReader(input), func(rel rf2.Relationship) error {
		rows = append(rows, rel)
		return nil
	})
	require.NoError(t, err)
	return rows
}

func TestParseReader_StatedAndInferredRows(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		row("1", "1", "100", "200", "0", "116680003", "900000000000010007"),
		row("2", "1", "100", "300", "1", "363698007", "900000000000011006"),
	}, "\n")

	rows := parseAll(t, input)
	require.Len(t, rows, 2)

	assert.Equal(t, rf2.Stated, rows[0].Characteristic)
	assert.True(t, rows[0].IsA)
	assert.Equal(t, int64(100), rows[0].SourceID)
	assert.Equal(t, int64(200), rows[0].DestinationID)
	assert.Equal(t, 0, rows[0].Group)

	assert.Equal(t, rf2.Inferred, rows[1].Characteristic)
	assert.False(t, rows[1].IsA)
	assert.Equal(t, 1, rows[1].Group)
}

func TestParseReader_SkipsInactiveRows(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		row("1", "0", "100", "200", "0", "116680003", "900000000000010007"),
		row("2", "1", "100", "300", "0", "116680003", "900000000000010007"),
	}, "\n")

	rows := parseAll(t, input)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(300), rows[0].DestinationID)
}

func TestParseReader_SkipsAdditionalCharacteristic(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		row("1", "1", "100", "200", "0", "116680003", "900000000000227009"),
	}, "\n")

	rows := parseAll(t, input)
	assert.Empty(t, rows)
}

func TestParseReader_SkipsBlankLines(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		"",
		row("1", "1", "100", "200", "0", "116680003", "900000000000010007"),
		"",
	}, "\n")

	rows := parseAll(t, input)
	assert.Len(t, rows, 1)
}

func TestParseReader_ErrorsCarryLineNumber(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"short row", "1\t20240101\t1"},
		{"bad sourceId", row("1", "1", "abc", "200", "0", "116680003", "900000000000010007")},
		{"bad destinationId", row("1", "1", "100", "-5", "0", "116680003", "900000000000010007")},
		{"bad group", row("1", "1", "100", "200", "x", "116680003", "900000000000010007")},
		{"bad typeId", row("1", "1", "100", "200", "0", "", "900000000000010007")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := relationshipHeader + "\n" + tt.row
			err := rf2.NewParser().ParseReader(strings.NewReader(input), func(rf2.Relationship) error {
				return nil
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParseReader_CallbackErrorStopsParse(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		row("1", "1", "100", "200", "0", "116680003", "900000000000010007"),
		row("2", "1", "100", "300", "0", "116680003", "900000000000010007"),
	}, "\n")

	calls := 0
	err := rf2.NewParser().ParseReader(strings.NewReader(input), func(rf2.Relationship) error {
		calls++
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

func TestParser_WithIsAType(t *testing.T) {
	input := strings.Join([]string{
		relationshipHeader,
		row("1", "1", "100", "200", "0", "42", "900000000000010007"),
	}, "\n")

	var rows []rf2.Relationship
	err := rf2.NewParser().WithIsAType(42).ParseReader(strings.NewReader(input), func(rel rf2.Relationship) error {
		rows = append(rows, rel)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsA)
}
