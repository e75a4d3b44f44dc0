package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasieve/internal/domain"
)

func TestRegistry_Get(t *testing.T) {
	reg := Builtin()

	s, ok := reg.Get("doctor_roster")
	require.True(t, ok)
	assert.Equal(t, "doctor_roster", s.Name)

	// Unknown industries and the "others" placeholder both resolve to the
	// zero-requirement generic schema.
	for _, industry := range []string{"others", "no_such_industry", ""} {
		s, ok = reg.Get(industry)
		assert.False(t, ok)
		assert.Equal(t, GenericName, s.Name)
		assert.Empty(t, s.Required)
		assert.Empty(t, s.Optional)
	}
}

func TestRegistry_Names(t *testing.T) {
	names := Builtin().Names()
	assert.Equal(t, []string{
		"accounts_ledger", "doctor_roster", "opbilling",
		"pharmacy_inventory", "retail_sales",
	}, names)
}

func TestRegistry_Merge(t *testing.T) {
	base := Builtin()
	custom := &Schema{
		Name:     "doctor_roster",
		Required: []string{"Doctor_ID"},
		Types:    map[string]domain.FieldType{"Doctor_ID": domain.FieldTypeString},
	}
	extra := &Schema{
		Name:     "lab_results",
		Required: []string{"Sample_ID", "Result"},
	}

	merged := base.Merge(custom, extra)

	// Extras override built-ins with the same name.
	s, ok := merged.Get("doctor_roster")
	require.True(t, ok)
	assert.Equal(t, []string{"Doctor_ID"}, s.Required)

	_, ok = merged.Get("lab_results")
	assert.True(t, ok)

	// The receiver is untouched.
	orig, _ := base.Get("doctor_roster")
	assert.Len(t, orig.Required, 8)
}

func TestSchema_FieldTypeOf(t *testing.T) {
	s, _ := Builtin().Get("retail_sales")

	assert.Equal(t, domain.FieldTypeNumber, s.FieldTypeOf("Quantity"))
	assert.Equal(t, domain.FieldTypeDate, s.FieldTypeOf("Order_Date"))
	assert.Equal(t, domain.FieldTypeString, s.FieldTypeOf("Not_A_Field"))
}

func TestSchema_AllFields(t *testing.T) {
	s := &Schema{
		Required: []string{"A", "B"},
		Optional: []string{"C"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, s.AllFields())
}

func TestNewAllPurpose(t *testing.T) {
	s := NewAllPurpose("all_purpose", map[string]domain.FieldType{
		"X": domain.FieldTypeNumber,
	})

	assert.True(t, s.AllPurpose)
	assert.Empty(t, s.Required)
	assert.Empty(t, s.Optional)
	assert.Equal(t, domain.FieldTypeNumber, s.FieldTypeOf("X"))
}

func TestBuiltin_EveryTypedFieldIsDeclared(t *testing.T) {
	for _, s := range Builtin().All() {
		declared := map[string]bool{}
		for _, f := range s.AllFields() {
			declared[f] = true
		}
		for f := range s.Types {
			assert.True(t, declared[f], "schema %q types field %q that is not required or optional", s.Name, f)
		}
		for _, f := range s.Required {
			_, ok := s.Types[f]
			assert.True(t, ok, "schema %q required field %q has no type", s.Name, f)
		}
	}
}
