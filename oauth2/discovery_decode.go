package oauth2

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// DocumentRoot names the whole document in a FieldError, e.g. when the body is not a JSON object.
const DocumentRoot = "(root)"

//go:embed discovery_schema.json
var discoverySchemaJSON []byte

var discoverySchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(discoverySchemaJSON))
})

// discoveryFieldOrder maps each wire member to its declaration position in DiscoveryDocument.
var discoveryFieldOrder = sync.OnceValue(func() map[string]int {
	t := reflect.TypeOf(DiscoveryDocument{})
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		order[name] = i
	}
	return order
})

// DecodeDiscoveryDocument validates raw provider metadata and decodes it.
// A JSON null or an empty string is treated as an absent member. Unknown members are ignored.
func DecodeDiscoveryDocument(raw []byte) (*DiscoveryDocument, error) {
	var members map[string]any
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, typeMismatch(DocumentRoot, truncate(string(raw), 64))
	}
	for k, v := range members {
		if v == nil || v == "" {
			delete(members, k)
		}
	}
	if members == nil {
		members = map[string]any{}
	}

	schema, err := discoverySchema()
	if err != nil {
		return nil, fmt.Errorf("[DecodeDiscoveryDocument] loading schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(members))
	if err != nil {
		return nil, fmt.Errorf("[DecodeDiscoveryDocument] validating document: %w", err)
	}
	if !result.Valid() {
		return nil, firstSchemaError(result.Errors(), members)
	}

	doc := &DiscoveryDocument{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, typeMismatch(DocumentRoot, err.Error())
	}
	return doc, nil
}

// firstSchemaError converts the schema failure on the earliest declared member into a FieldError.
func firstSchemaError(errs []gojsonschema.ResultError, members map[string]any) error {
	order := discoveryFieldOrder()
	converted := make([]*FieldError, 0, len(errs))
	for _, e := range errs {
		converted = append(converted, toFieldError(e, members))
	}
	sort.SliceStable(converted, func(i, j int) bool {
		return position(order, converted[i].Field) < position(order, converted[j].Field)
	})
	return converted[0]
}

func toFieldError(e gojsonschema.ResultError, members map[string]any) *FieldError {
	switch e.Type() {
	case "required":
		property, _ := e.Details()["property"].(string)
		return &FieldError{Field: property, Kind: ErrMissingRequiredField}
	case "enum":
		field := memberName(e.Field())
		return &FieldError{Field: field, Kind: ErrInvalidEnumValue, Value: fmt.Sprint(e.Value())}
	default:
		field := memberName(e.Field())
		value := fmt.Sprint(e.Value())
		if v, ok := members[field]; ok {
			value = fmt.Sprint(v)
		}
		return &FieldError{Field: field, Kind: ErrTypeMismatch, Value: value}
	}
}

// memberName strips array indices from a gojsonschema field path ("scopes_supported.0").
func memberName(path string) string {
	name, _, _ := strings.Cut(path, ".")
	return name
}

func position(order map[string]int, field string) int {
	if i, ok := order[field]; ok {
		return i
	}
	return len(order)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
