// Package jsonl parses JSON Lines sources, one object per line such as {"key": 0, "value": 3}.
// This parser uses https://github.com/tidwall/gjson to process data, and supports key and
// value field names formatted as gjson paths.
package jsonl
