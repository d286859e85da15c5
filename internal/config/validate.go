// CUE schema validation code
package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE []byte

// Validate checks a YAML document against the embedded #Config schema.
func Validate(name string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	f, err := cueyaml.Extract(name, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	doc := ctx.BuildFile(f)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}

	final := schema.LookupPath(cue.ParsePath("#Config")).Unify(doc)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
