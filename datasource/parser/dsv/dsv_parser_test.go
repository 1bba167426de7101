package dsv

import (
	"bufio"
	"strings"
	"testing"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/errors"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, it bucketsum.RecordIterator) ([]bucketsum.Record, error) {
	var records []bucketsum.Record
	for it.HasNextRecord() {
		rec, err := it.NextRecord()
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func TestDSVParser(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	ended := 0
	it, err := parser.Parse(strings.NewReader("0,3\n1,4\r\n9,18446744073709551615\n"), "file-a", func() { ended++ })
	require.Nil(t, err)
	records, err := readAll(t, it)
	require.Nil(t, err)
	require.Equal(t, []bucketsum.Record{{Key: 0, Value: 3}, {Key: 1, Value: 4}, {Key: 9, Value: 18446744073709551615}}, records)
	require.Equal(t, 1, ended)
	require.False(t, it.HasNextRecord())
	_, err = it.NextRecord()
	require.Equal(t, errors.NoMoreRecordsError{}, err)
	require.Equal(t, 1, ended)
}

func TestDSVParserWithoutTrailingNewline(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	it, err := parser.Parse(strings.NewReader("0,2\n9,1"), "file-b", nil)
	require.Nil(t, err)
	records, err := readAll(t, it)
	require.Nil(t, err)
	require.Equal(t, []bucketsum.Record{{Key: 0, Value: 2}, {Key: 9, Value: 1}}, records)
}

func TestDSVParserEmptyInput(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	ended := false
	it, err := parser.Parse(strings.NewReader(""), "empty", func() { ended = true })
	require.Nil(t, err)
	require.False(t, it.HasNextRecord())
	require.True(t, ended)
}

func TestDSVParserCustomDelimiter(t *testing.T) {
	parser := CreateParser(&ParserConf{Delimiter: '\t'})
	rec, err := parser.ParseLine("tabs", 1, "3\t12")
	require.Nil(t, err)
	require.Equal(t, bucketsum.Record{Key: 3, Value: 12}, rec)
}

func TestDSVParserMalformedLines(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	for _, line := range []string{"5", "", "five"} {
		_, err := parser.ParseLine("bad", 7, line)
		require.Equal(t, errors.MalformedLineError{Source: "bad", Line: 7, Text: line}, err)
	}
}

func TestDSVParserInvalidIntegers(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	cases := map[string]string{
		"abc,5": "key",
		"-1,5":  "key",
		" 1,5":  "key",
		"+1,5":  "key",
		",5":    "key",
		"5,":    "value",
		"5,abc": "value",
		"5, 1":  "value",
		"1,2,3": "value",
		"1,-2":  "value",

		"1,99999999999999999999": "value",
	}
	for line, field := range cases {
		_, err := parser.ParseLine("bad", 1, line)
		require.NotNil(t, err, line)
		intErr, ok := err.(errors.InvalidIntegerError)
		require.True(t, ok, line)
		require.Equal(t, field, intErr.Field, line)
		require.NotNil(t, intErr.Unwrap(), line)
	}
}

func TestDSVParserStopsAtFirstBadLine(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	ended := 0
	it, err := parser.Parse(strings.NewReader("0,1\n\n2,2\n"), "blank", func() { ended++ })
	require.Nil(t, err)
	records, err := readAll(t, it)
	require.Equal(t, []bucketsum.Record{{Key: 0, Value: 1}}, records)
	require.Equal(t, errors.MalformedLineError{Source: "blank", Line: 2, Text: ""}, err)
	require.Equal(t, 1, ended)
	require.False(t, it.HasNextRecord())
}

func TestDSVParserReportsOversizedLines(t *testing.T) {
	parser := CreateParser(&ParserConf{MaxBufferSize: 16})
	it, err := parser.Parse(strings.NewReader("0,1\n1,"+strings.Repeat("1", 40)+"\n"), "long", nil)
	require.Nil(t, err)
	records, err := readAll(t, it)
	require.Equal(t, []bucketsum.Record{{Key: 0, Value: 1}}, records)
	require.NotNil(t, err)
	srcErr, ok := err.(*errors.SourceError)
	require.True(t, ok)
	require.Equal(t, "long", srcErr.Source)
	require.Equal(t, 2, srcErr.Line)
	require.Equal(t, bufio.ErrTooLong, srcErr.Err)
}

func TestDSVParserClose(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	ended := 0
	it, err := parser.Parse(strings.NewReader("0,1\n1,1\n"), "closed", func() { ended++ })
	require.Nil(t, err)
	require.True(t, it.HasNextRecord())
	it.Close()
	it.Close()
	require.Equal(t, 1, ended)
	require.False(t, it.HasNextRecord())
	// listeners registered after the end fire immediately
	it.OnEnd(func() { ended++ })
	require.Equal(t, 2, ended)
}
