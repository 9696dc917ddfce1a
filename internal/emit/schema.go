package emit

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
)

//go:embed schema/root.schema.json
var rootSchemaJSON []byte

var rootSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("root.schema.json", bytes.NewReader(rootSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile("root.schema.json")
})

// CheckRoot validates the assembled root against the generator config schema.
// Violations are reported as one validation error listing every failing location.
func CheckRoot(root map[string]any) error {
	schema, err := rootSchema()
	if err != nil {
		return errors.InternalError("failed to compile root schema").WithCause(err).Build()
	}

	// The validator only understands values produced by encoding/json.
	data, err := json.Marshal(root)
	if err != nil {
		return errors.RenderError("failed to encode generator config").WithCause(err).Build()
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return errors.InternalError("failed to decode generator config").WithCause(err).Build()
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !stderrors.As(err, &verr) {
			return errors.InternalError("schema validation failed").WithCause(err).Build()
		}
		issues := schemaIssues(verr)
		return errors.ValidationError("generator config does not match schema: "+strings.Join(issues, "; ")).
			WithContext("issues", len(issues)).
			Build()
	}
	return nil
}

func schemaIssues(root *jsonschema.ValidationError) []string {
	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "/"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(root)
	return issues
}
