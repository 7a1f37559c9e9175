package queries

import (
	_ "embed"
)

var (
	//go:embed mapping_ddl.sql
	MappingDDL string
)
