package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/datasource"
	"github.com/go-sif/bucketsum/errors"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	KeyPath       string // gjson path of the key within each object. Defaults to "key".
	ValuePath     string // gjson path of the value within each object. Defaults to "value".
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces Records from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if len(conf.KeyPath) == 0 {
		conf.KeyPath = "key"
	}
	if len(conf.ValuePath) == 0 {
		conf.ValuePath = "value"
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce Records
func (p *Parser) Parse(r io.Reader, source string, onIteratorEnd func()) (bucketsum.RecordIterator, error) {
	iterator := datasource.CreateLineIterator(r, p.conf.MaxBufferSize, source, p.ParseLine)
	if onIteratorEnd != nil {
		iterator.OnEnd(onIteratorEnd)
	}
	return iterator, nil
}

// ParseLine parses a single JSON object into a Record
func (p *Parser) ParseLine(source string, line int, text string) (bucketsum.Record, error) {
	if !gjson.Valid(text) {
		return bucketsum.Record{}, errors.MalformedLineError{Source: source, Line: line, Text: text}
	}
	obj := gjson.Parse(text)
	if !obj.IsObject() {
		return bucketsum.Record{}, errors.MalformedLineError{Source: source, Line: line, Text: text}
	}
	key, err := parseUintField(obj, p.conf.KeyPath)
	if err != nil {
		return bucketsum.Record{}, errors.InvalidIntegerError{Source: source, Line: line, Field: "key", Text: obj.Get(p.conf.KeyPath).Raw, Err: err}
	}
	val, err := parseUintField(obj, p.conf.ValuePath)
	if err != nil {
		return bucketsum.Record{}, errors.InvalidIntegerError{Source: source, Line: line, Field: "value", Text: obj.Get(p.conf.ValuePath).Raw, Err: err}
	}
	return bucketsum.Record{Key: key, Value: val}, nil
}

func parseUintField(obj gjson.Result, path string) (uint64, error) {
	field := obj.Get(path)
	if !field.Exists() {
		return 0, fmt.Errorf("field %s is missing", path)
	}
	if field.Type != gjson.Number {
		return 0, fmt.Errorf("field %s is not a number", path)
	}
	return strconv.ParseUint(field.Raw, 10, 64)
}
