package dsv

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/datasource"
	"github.com/go-sif/bucketsum/errors"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter     rune // The delimiter separating the key from the value. Defaults to ,
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces Records from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data to produce Records
func (p *Parser) Parse(r io.Reader, source string, onIteratorEnd func()) (bucketsum.RecordIterator, error) {
	iterator := datasource.CreateLineIterator(r, p.conf.MaxBufferSize, source, p.ParseLine)
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	return iterator, nil
}

// ParseLine parses a single line of DSV data into a Record
func (p *Parser) ParseLine(source string, line int, text string) (bucketsum.Record, error) {
	keyStr, valStr, found := strings.Cut(text, string(p.conf.Delimiter))
	if !found {
		return bucketsum.Record{}, errors.MalformedLineError{Source: source, Line: line, Text: text}
	}
	key, err := strconv.ParseUint(keyStr, 10, 64)
	if err != nil {
		return bucketsum.Record{}, errors.InvalidIntegerError{Source: source, Line: line, Field: "key", Text: keyStr, Err: err}
	}
	val, err := strconv.ParseUint(valStr, 10, 64)
	if err != nil {
		return bucketsum.Record{}, errors.InvalidIntegerError{Source: source, Line: line, Field: "value", Text: valStr, Err: err}
	}
	return bucketsum.Record{Key: key, Value: val}, nil
}
