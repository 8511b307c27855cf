package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shubhamdevjs/BeatATS/internal/config"
	"github.com/shubhamdevjs/BeatATS/internal/schemas"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// loadPolicy reads the scoring policy file given by the flag, falling
// back to the BEATATS_POLICY env var and then to the built-in defaults.
func loadPolicy(path string) (config.Policy, error) {
	if path == "" {
		path = os.Getenv("BEATATS_POLICY")
	}
	return config.Load(path)
}

func loadResume(path string) (*types.Resume, error) {
	var resume types.Resume
	if err := loadDocument(path, schemas.ResumeSchema, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func loadJD(path string) (*types.JobDescription, error) {
	var jd types.JobDescription
	if err := loadDocument(path, schemas.JobDescriptionSchema, &jd); err != nil {
		return nil, err
	}
	return &jd, nil
}

// loadDocument reads a JSON document, validates it against its schema,
// and decodes it. A schema that cannot be loaded only produces a
// warning; a document that violates the schema is an error.
func loadDocument(path, schema string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schema); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, data); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("%s does not validate against schema: %w", path, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", path, err)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeOutput marshals the result and writes it to outPath, or to
// stdout when no output path was given.
func writeOutput(v any, outPath string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
