package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// SchemaHandler publishes the JSON Schema of the guide response.
type SchemaHandler struct {
	guide []byte
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// scalarPassthrough describes durations and timestamps, which legacy tours
// write either as seconds or as "mm:ss" strings.
func scalarPassthrough(t reflect.Type) *jsonschema.Schema {
	if t != rawMessageType {
		return nil
	}
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "number"}, {Type: "string"}}}
}

// NewSchemaHandler reflects the guide schema once. POI objects are passed
// through from the CMS, so additional properties are allowed.
func NewSchemaHandler() (*SchemaHandler, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
		Mapper:                    scalarPassthrough,
	}
	schema := reflector.Reflect(&domain.GuideView{})
	schema.Title = "Guide"

	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encoding guide schema: %w", err)
	}
	return &SchemaHandler{guide: b}, nil
}

// Guide handles GET /api/v1/schema/guide.
func (h *SchemaHandler) Guide(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.guide)
}
