package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasieve/internal/domain"
)

func TestParse(t *testing.T) {
	data := []byte(`
schemas:
  - name: lab_results
    required: [Sample_ID, Test_Name, Result_Value, Test_Date]
    optional: [Technician]
    types:
      Sample_ID: string
      Result_Value: number
      Test_Date: date
`)

	schemas, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	s := schemas[0]
	assert.Equal(t, "lab_results", s.Name)
	assert.Equal(t, []string{"Sample_ID", "Test_Name", "Result_Value", "Test_Date"}, s.Required)
	assert.Equal(t, []string{"Technician"}, s.Optional)
	assert.Equal(t, domain.FieldTypeNumber, s.Types["Result_Value"])
	assert.Equal(t, domain.FieldTypeDate, s.Types["Test_Date"])
}

func TestParse_UnknownTypeRejected(t *testing.T) {
	data := []byte(`
schemas:
  - name: broken
    required: [X]
    types:
      X: integer
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestParse_MissingNameRejected(t *testing.T) {
	data := []byte(`
schemas:
  - required: [X]
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("schemas: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.yaml")
	content := `
schemas:
  - name: inventory
    required: [Item, Count]
    types:
      Count: number
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	schemas, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "inventory", schemas[0].Name)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
