// Package importer turns contact spreadsheets into normalized rows and back.
package importer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/sendsafe/sendsafe-api/internal/domain"
)

var (
	// ErrMissingColumns is returned when the header does not name both company and email
	ErrMissingColumns = errors.New("header must contain a company column and an email column")
	// ErrUnsupportedFormat is returned for files that are neither delimited text nor a workbook
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyFile is returned when a file has no header row
	ErrEmptyFile = errors.New("file has no header row")
)

// Column is the meaning of an input column
type Column int

const (
	ColumnIgnored Column = iota
	ColumnCompany
	ColumnEmail
	ColumnName
	ColumnDomain
	ColumnIndustry
	ColumnComment
	ColumnEmployees
	ColumnGroup
)

// vocabulary is checked in order; the first column kind whose keyword occurs in a
// header wins, so "Company name" is a company column and "Contact email" an email column.
var vocabulary = []struct {
	column   Column
	keywords []string
}{
	{ColumnEmail, []string{"e-post", "epost", "email", "e-mail", "mail"}},
	{ColumnCompany, []string{"company", "firma", "bedrift", "selskap", "organisation", "organization", "organisasjon", "virksomhet"}},
	{ColumnDomain, []string{"domain", "domene", "website", "nettside", "hjemmeside", "url"}},
	{ColumnIndustry, []string{"industry", "bransje", "sector", "sektor"}},
	{ColumnEmployees, []string{"employee", "ansatte", "headcount", "størrelse"}},
	{ColumnComment, []string{"comment", "kommentar", "note", "notat", "merknad"}},
	{ColumnGroup, []string{"group", "gruppe", "liste", "segment"}},
	{ColumnName, []string{"name", "navn", "contact", "kontakt", "person"}},
}

// ClassifyHeader resolves one header cell
func ClassifyHeader(header string) Column {
	h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
	if h == "" {
		return ColumnIgnored
	}
	for _, v := range vocabulary {
		for _, kw := range v.keywords {
			if strings.Contains(h, kw) {
				return v.column
			}
		}
	}
	return ColumnIgnored
}

// Mapping records which input column index feeds each field
type Mapping map[Column]int

// ResolveHeader maps header cells to columns. The first header of each kind wins.
func ResolveHeader(header []string) (Mapping, error) {
	m := Mapping{}
	for i, h := range header {
		c := ClassifyHeader(h)
		if c == ColumnIgnored {
			continue
		}
		if _, taken := m[c]; !taken {
			m[c] = i
		}
	}
	_, hasCompany := m[ColumnCompany]
	_, hasEmail := m[ColumnEmail]
	if !hasCompany || !hasEmail {
		return nil, ErrMissingColumns
	}
	return m, nil
}

func (m Mapping) cell(row []string, c Column) string {
	i, ok := m[c]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Table is a header row followed by data rows
type Table struct {
	Header []string
	Rows   [][]string
}

// Normalize converts a table into contact rows. Every row with at least one
// cell is returned, even when all its cells are blank, so callers can count rows
// without an email as skipped. Empty sheet rows carry no cells and are not input.
func Normalize(t *Table) ([]domain.ContactRow, error) {
	m, err := ResolveHeader(t.Header)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ContactRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		if len(r) == 0 {
			continue
		}
		rows = append(rows, domain.ContactRow{
			Company:       m.cell(r, ColumnCompany),
			ContactEmail:  m.cell(r, ColumnEmail),
			ContactName:   m.cell(r, ColumnName),
			Domain:        m.cell(r, ColumnDomain),
			Industry:      m.cell(r, ColumnIndustry),
			EmployeeCount: ParseEmployeeCount(m.cell(r, ColumnEmployees)),
			Comment:       m.cell(r, ColumnComment),
			Group:         m.cell(r, ColumnGroup),
		})
	}
	return rows, nil
}

// ParseEmployeeCount reads the first number of a cell such as "1 200", "50-100" or "ca. 30"
func ParseEmployeeCount(s string) *int {
	var digits []rune
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
			continue
		}
		if len(digits) == 0 {
			continue
		}
		// spaces inside a number are thousands separators
		if r == ' ' || r == '\u00a0' {
			continue
		}
		break
	}
	if len(digits) == 0 {
		return nil
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return nil
	}
	return &n
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
