// Package converters provides driver-specific converters binding
// sqlq.IDTable as a table-valued param.
//
//	c := sqlq.NewConverters()
//	sqlq.RegisterConverter[sqlq.IDTable](c, converters.PostgresIDArray())
//	q := sqlq.New[User](dialect.PostgreSQL{}, sqlq.WithConverters(c))
package converters

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgtype"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/qjebbs/go-sqlq"
)

// DefaultIntListType is the user-defined table type expected by
// SQLServerIntList when no type name is given.
const DefaultIntListType = "dbo.IntList"

// IntListRow is a row of the SQL Server table type, e.g.:
//
//	CREATE TYPE dbo.IntList AS TABLE (Id INT NOT NULL)
type IntListRow struct {
	Id int32
}

// SQLServerIntList converts sqlq.IDTable into a structured param of the
// user-defined table type typeName, DefaultIntListType if empty.
func SQLServerIntList(typeName string) sqlq.Converter {
	if typeName == "" {
		typeName = DefaultIntListType
	}
	return sqlq.ConverterFunc(func(v any) (any, error) {
		ids, err := idTable(v)
		if err != nil {
			return nil, err
		}
		rows := make([]IntListRow, len(ids))
		for i, id := range ids {
			if id < math.MinInt32 || id > math.MaxInt32 {
				return nil, fmt.Errorf("id %d overflows INT", id)
			}
			rows[i] = IntListRow{Id: int32(id)}
		}
		return mssql.TVP{
			TypeName: typeName,
			Value:    rows,
		}, nil
	})
}

// PostgresIDArray converts sqlq.IDTable into a bigint array.
func PostgresIDArray() sqlq.Converter {
	return sqlq.ConverterFunc(func(v any) (any, error) {
		ids, err := idTable(v)
		if err != nil {
			return nil, err
		}
		arr := make(pgtype.FlatArray[int64], len(ids))
		for i, id := range ids {
			arr[i] = int64(id)
		}
		return arr, nil
	})
}

func idTable(v any) (sqlq.IDTable, error) {
	ids, ok := v.(sqlq.IDTable)
	if !ok {
		return nil, fmt.Errorf("expected sqlq.IDTable, got %T", v)
	}
	return ids, nil
}
