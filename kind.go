package cba

import "strings"

// Kind identifies the column type of a Value.
type Kind int

const (
	KindTinyInt Kind = iota
	KindSmallInt
	KindMediumInt
	KindInt
	KindBigInt
	KindBoolean
	KindDecimal
	KindFloat
	KindDouble
	KindChar
	KindVarchar
	KindTinyText
	KindText
	KindMediumText
	KindDate
	KindTime
	KindDateTime
	KindTimestamp
)

var kindNames = map[Kind]string{
	KindTinyInt:    "TINYINT",
	KindSmallInt:   "SMALLINT",
	KindMediumInt:  "MEDIUMINT",
	KindInt:        "INT",
	KindBigInt:     "BIGINT",
	KindBoolean:    "BOOLEAN",
	KindDecimal:    "DECIMAL",
	KindFloat:      "FLOAT",
	KindDouble:     "DOUBLE",
	KindChar:       "CHAR",
	KindVarchar:    "VARCHAR",
	KindTinyText:   "TINYTEXT",
	KindText:       "TEXT",
	KindMediumText: "MEDIUMTEXT",
	KindDate:       "DATE",
	KindTime:       "TIME",
	KindDateTime:   "DATETIME",
	KindTimestamp:  "TIMESTAMP",
}

// String returns the SQL keyword of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseKind parses a SQL type keyword, case-insensitive. "integer" and "bool" are accepted as aliases.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "INTEGER":
		return KindInt, true
	case "BOOL":
		return KindBoolean, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
