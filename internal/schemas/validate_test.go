package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentResume(t *testing.T) {
	schemaPath := ResolveSchemaPath(ResumeSchema)
	require.NotEmpty(t, schemaPath, "resume schema must be resolvable from the package directory")

	valid := []byte(`{
		"profile": {"name": "Jane Doe"},
		"sections": {
			"experience": [{"title": "Engineer", "company": "Acme", "bullets": ["Did things"]}],
			"skills": {"categories": [{"name": "Languages", "items": ["Python"]}]}
		}
	}`)
	assert.NoError(t, ValidateDocument(schemaPath, valid))

	missingSections := []byte(`{"profile": {"name": "Jane Doe"}}`)
	err := ValidateDocument(schemaPath, missingSections)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "sections")
}

func TestValidateDocumentJobDescription(t *testing.T) {
	schemaPath := ResolveSchemaPath(JobDescriptionSchema)
	require.NotEmpty(t, schemaPath)

	valid := []byte(`{
		"requirements": {
			"hard": {
				"skills": ["python"],
				"filters": {"years_experience": {"min_years": 3}}
			},
			"preferred": {"skills": ["docker"]}
		}
	}`)
	assert.NoError(t, ValidateDocument(schemaPath, valid))

	wrongType := []byte(`{"requirements": {"hard": {"skills": "python"}}}`)
	err := ValidateDocument(schemaPath, wrongType)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateDocumentMissingSchema(t *testing.T) {
	err := ValidateDocument("schemas/does_not_exist.json", []byte(`{}`))
	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}

func TestValidateString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateString(schema, `{"name": "ok"}`))

	err := ValidateString(schema, `{}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "(root)", ve.Errors[0].Field)

	err = ValidateString(`{"type": "nonsense"}`, `{}`)
	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}
