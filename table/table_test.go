package table

import (
	"testing"

	"github.com/eryjus/cba"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const elementsTable = "elements"

func newElements(t *testing.T) *Table {
	tbl, err := New("cba_metadata", elementsTable,
		cba.NewVarchar(cba.WithField(elementsTable, "element_name"), cba.WithSize(64), cba.WithNotNull()),
		cba.NewVarchar(cba.WithField(elementsTable, "element_type"), cba.WithSize(16)),
		cba.NewTinyInt(cba.WithField(elementsTable, "element_decimals"), cba.WithSize(3), cba.WithZeroFill()),
		cba.NewTimestamp(cba.WithField(elementsTable, "element_create_date_time"), cba.WithUpdateStyle(cba.InsertOnly)),
		cba.NewTimestamp(cba.WithField(elementsTable, "element_modify_date_time"), cba.WithUpdateStyle(cba.UpdateOnly)),
	)
	assert.NilError(t, err)
	return tbl
}

func TestTableCreateSpec(t *testing.T) {
	tbl := newElements(t)

	spec, err := tbl.CreateSpec()
	assert.NilError(t, err)
	assert.Equal(t, "CREATE TABLE cba_metadata.elements ("+
		"element_name VARCHAR(64) NOT NULL, "+
		"element_type VARCHAR(16), "+
		"element_decimals TINYINT(3) ZEROFILL, "+
		"element_create_date_time TIMESTAMP, "+
		"element_modify_date_time TIMESTAMP)", spec)
}

func TestTableCreateSpecNoSchema(t *testing.T) {
	tbl, err := New("", "tags", cba.NewInt(cba.WithField("tags", "tag_id")))
	assert.NilError(t, err)
	assert.Equal(t, "tags", tbl.QualifiedName())

	spec, err := tbl.CreateSpec()
	assert.NilError(t, err)
	assert.Equal(t, "CREATE TABLE tags (tag_id INT(11))", spec)
}

func TestTableNewErrors(t *testing.T) {
	_, err := New("", "tags", cba.NewInt(cba.WithField("users", "user_id")))
	assert.ErrorIs(t, err, ErrFieldTable)

	_, err = New("", "tags", cba.NewInt())
	assert.ErrorIs(t, err, ErrFieldTable)

	_, err = New("", "tags",
		cba.NewInt(cba.WithField("tags", "tag_id")),
		cba.NewVarchar(cba.WithField("tags", "tag_id")))
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestTableField(t *testing.T) {
	tbl := newElements(t)
	assert.Assert(t, is.Len(tbl.Fields(), 5))
	assert.Equal(t, "element_name", tbl.Fields()[0].FieldName())

	f, ok := tbl.Field("element_decimals")
	assert.Assert(t, ok)
	assert.Equal(t, cba.KindTinyInt, f.Kind())

	_, ok = tbl.Field("element_id")
	assert.Assert(t, !ok)
}

func TestTableClearBuffer(t *testing.T) {
	tbl := newElements(t)

	name, _ := tbl.Field("element_name")
	decimals, _ := tbl.Field("element_decimals")
	name.Assign("price")
	decimals.Assign("2")

	assert.Assert(t, is.Len(tbl.DirtyFields(), 2))
	assert.Equal(t, "002", decimals.String())

	tbl.ClearBuffer()
	assert.Assert(t, is.Len(tbl.DirtyFields(), 0))
	assert.Equal(t, "", name.String())
	assert.Equal(t, "000", decimals.String())
	assert.Assert(t, !name.IsEmpty())
	assert.Assert(t, decimals.IsEmpty())
}

func TestTableStamp(t *testing.T) {
	tbl := newElements(t)
	values := map[string]string{
		"element_create_date_time": "2018-03-23T10:00:00Z",
		"element_modify_date_time": "2018-03-24T10:00:00Z",
	}

	skipped, err := tbl.Stamp(cba.PhaseInsert, values)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"element_modify_date_time"}, skipped)

	created, _ := tbl.Field("element_create_date_time")
	modified, _ := tbl.Field("element_modify_date_time")
	assert.Equal(t, "2018-03-23T10:00:00.000000Z", created.String())
	assert.Equal(t, "0000-01-01T00:00:00.000000Z", modified.String())

	skipped, err = tbl.Stamp(cba.PhaseUpdate, values)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"element_create_date_time"}, skipped)
	assert.Equal(t, "2018-03-24T10:00:00.000000Z", modified.String())

	_, err = tbl.Stamp(cba.PhaseUpdate, map[string]string{"element_id": "1"})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
