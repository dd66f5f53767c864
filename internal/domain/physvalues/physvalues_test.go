package physvalues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fishrambeta/symcas/internal/domain/physvalues"
)

func TestStandardTableLookup(t *testing.T) {
	tbl := physvalues.Standard()
	v, ok := tbl.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, 299792458.0, v)
}

func TestStandardTableMissingVariable(t *testing.T) {
	tbl := physvalues.Standard()
	_, ok := tbl.Lookup("not_a_constant")
	assert.False(t, ok)
}

func TestTableSatisfiesProvider(t *testing.T) {
	var p physvalues.Provider = physvalues.Standard()
	v, ok := p.Lookup("g")
	assert.True(t, ok)
	assert.InDelta(t, 9.81, v, 1e-9)
}
