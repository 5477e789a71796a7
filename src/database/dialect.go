package database

import "fmt"

// Dialect holds the column types and statement forms that differ between
// drivers.
type Dialect struct {
	Name     string
	Key      string // indexable string column
	Text     string // unbounded string column
	BigInt   string
	SmallInt string
}

func dialectFor(driver string) Dialect {
	switch driver {
	case DriverPostgres:
		return Dialect{Name: driver, Key: "VARCHAR(191)", Text: "TEXT", BigInt: "BIGINT", SmallInt: "SMALLINT"}
	case DriverMySQL:
		return Dialect{Name: driver, Key: "VARCHAR(191)", Text: "LONGTEXT", BigInt: "BIGINT", SmallInt: "SMALLINT"}
	case DriverSQLServer:
		return Dialect{Name: driver, Key: "NVARCHAR(191)", Text: "NVARCHAR(MAX)", BigInt: "BIGINT", SmallInt: "SMALLINT"}
	default:
		return Dialect{Name: driver, Key: "TEXT", Text: "TEXT", BigInt: "INTEGER", SmallInt: "INTEGER"}
	}
}

// CreateTable returns an idempotent CREATE TABLE statement.
func (d Dialect) CreateTable(name, columns string) string {
	if d.Name == DriverSQLServer {
		return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NULL CREATE TABLE %s (%s)", name, name, columns)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", name, columns)
}

// Limit returns a trailing row-limit clause taking one '?' argument. It
// must follow an ORDER BY.
func (d Dialect) Limit() string {
	if d.Name == DriverSQLServer {
		return " OFFSET 0 ROWS FETCH NEXT ? ROWS ONLY"
	}
	return " LIMIT ?"
}

// Upsert returns a statement that inserts or replaces the value columns of
// a row identified by key. Arguments are the key followed by values, in
// column order.
func (d Dialect) Upsert(table, key string, values ...string) string {
	cols := key
	marks := "?"
	for _, v := range values {
		cols += ", " + v
		marks += ", ?"
	}

	switch d.Name {
	case DriverMySQL:
		set := ""
		for i, v := range values {
			if i > 0 {
				set += ", "
			}
			set += fmt.Sprintf("%s = VALUES(%s)", v, v)
		}
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s", table, cols, marks, set)

	case DriverSQLServer:
		src := "?" + " AS " + key
		set := ""
		ins := "src." + key
		for i, v := range values {
			src += ", ? AS " + v
			if i > 0 {
				set += ", "
			}
			set += fmt.Sprintf("t.%s = src.%s", v, v)
			ins += ", src." + v
		}
		return fmt.Sprintf("MERGE INTO %s AS t USING (SELECT %s) AS src ON t.%s = src.%s "+
			"WHEN MATCHED THEN UPDATE SET %s WHEN NOT MATCHED THEN INSERT (%s) VALUES (%s);",
			table, src, key, key, set, cols, ins)

	default:
		set := ""
		for i, v := range values {
			if i > 0 {
				set += ", "
			}
			set += fmt.Sprintf("%s = excluded.%s", v, v)
		}
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s", table, cols, marks, key, set)
	}
}
