package schema_test

import (
	"fmt"

	"github.com/f8n-ai/semdag/schema"
)

// ExampleObjectType builds a schema-backed descriptor and parses a
// candidate into its canonical object form.
func ExampleObjectType() {
	doc := []byte(`{
		"type": "object",
		"properties": {"id": {"type": "string"}},
		"required": ["id"]
	}`)

	entity, err := schema.ObjectType("Entity", doc)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, err := entity.Parse(map[string]any{"id": "e-1"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(entity.Name(), v["id"])
	fmt.Println(entity.Accepts(map[string]any{}))
	// Output:
	// Entity e-1
	// false
}
