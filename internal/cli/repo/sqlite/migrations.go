package sqlite

import (
	_ "embed"
)

// Схема клиентской БД. Все выражения идемпотентны (IF NOT EXISTS),
// поэтому Migrate можно вызывать при каждом открытии профиля.
//
//go:embed migrations/001_init.sql
var schemaDDL string

func initialDDL() string { return schemaDDL }
