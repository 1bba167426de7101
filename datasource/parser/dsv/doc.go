// Package dsv parses delimiter-separated key,value lines. Each line is split on the first
// delimiter; both halves must be base-10 non-negative integers with no surrounding whitespace.
package dsv
