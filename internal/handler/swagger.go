package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dafibh/tabi/tabi-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const (
	openAPIVersion     = "3.0.3"
	definitionsPrefix  = "#/definitions/"
	schemasPrefix      = "#/components/schemas/"
	defaultContentType = echo.MIMEApplicationJSON
)

// OpenAPIDocument is the OpenAPI 3 rendering of the swag document
type OpenAPIDocument struct {
	OpenAPI    string         `json:"openapi"`
	Info       map[string]any `json:"info"`
	Servers    []Server       `json:"servers"`
	Paths      map[string]any `json:"paths"`
	Components map[string]any `json:"components,omitempty"`
}

// Server is one entry of the OpenAPI servers list
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// swaggerDoc is the subset of a Swagger 2.0 document swag generates for us
type swaggerDoc struct {
	Info        map[string]any                       `json:"info"`
	Paths       map[string]map[string]map[string]any `json:"paths"`
	Definitions map[string]any                       `json:"definitions"`
}

// ServeOpenAPI3Spec serves the API description as OpenAPI 3 with the
// requesting host as its only server
func ServeOpenAPI3Spec(c echo.Context) error {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read API description")
	}

	doc, err := convertSwaggerDoc([]byte(raw), openAPIServers(c))
	if err != nil {
		return NewInternalError(c, "Failed to convert API description")
	}
	return c.JSON(http.StatusOK, doc)
}

func openAPIServers(c echo.Context) []Server {
	return []Server{{
		URL:         c.Scheme() + "://" + c.Request().Host + docs.SwaggerInfo.BasePath,
		Description: "Current host",
	}}
}

func convertSwaggerDoc(raw []byte, servers []Server) (*OpenAPIDocument, error) {
	var src swaggerDoc
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}

	paths := make(map[string]any, len(src.Paths))
	for path, ops := range src.Paths {
		converted := make(map[string]any, len(ops))
		for method, op := range ops {
			converted[method] = convertOperation(op)
		}
		paths[path] = converted
	}

	doc := &OpenAPIDocument{
		OpenAPI: openAPIVersion,
		Info:    src.Info,
		Servers: servers,
		Paths:   paths,
	}
	if len(src.Definitions) > 0 {
		doc.Components = map[string]any{"schemas": rewriteRefs(src.Definitions)}
	}
	return doc, nil
}

// convertOperation moves body and formData parameters into requestBody and
// response schemas under content, keyed by the operation's media types
func convertOperation(op map[string]any) map[string]any {
	consumes := mediaType(op["consumes"])
	produces := mediaType(op["produces"])

	out := make(map[string]any, len(op))
	for key, value := range op {
		switch key {
		case "consumes", "produces", "parameters", "responses":
		default:
			out[key] = value
		}
	}

	var params []any
	form := newFormSchema()
	for _, p := range asSlice(op["parameters"]) {
		param, ok := p.(map[string]any)
		if !ok {
			continue
		}
		switch param["in"] {
		case "body":
			body := map[string]any{
				"required": param["required"] == true,
				"content":  map[string]any{consumes: map[string]any{"schema": rewriteRefs(param["schema"])}},
			}
			if desc, ok := param["description"]; ok {
				body["description"] = desc
			}
			out["requestBody"] = body
		case "formData":
			form.add(param)
		default:
			params = append(params, convertParameter(param))
		}
	}
	if len(params) > 0 {
		out["parameters"] = params
	}
	if !form.empty() {
		out["requestBody"] = map[string]any{
			"required": len(form.required) > 0,
			"content":  map[string]any{consumes: map[string]any{"schema": form.schema()}},
		}
	}

	if responses, ok := op["responses"].(map[string]any); ok {
		converted := make(map[string]any, len(responses))
		for status, r := range responses {
			converted[status] = convertResponse(r, produces)
		}
		out["responses"] = converted
	}
	return out
}

// convertParameter nests the type fields of a query or path parameter
// under schema
func convertParameter(param map[string]any) map[string]any {
	out := map[string]any{}
	schema := map[string]any{}
	for key, value := range param {
		switch key {
		case "type", "format", "enum", "default", "minimum", "maximum":
			schema[key] = value
		case "items":
			schema[key] = rewriteRefs(value)
		default:
			out[key] = value
		}
	}
	if len(schema) > 0 {
		out["schema"] = schema
	}
	return out
}

func convertResponse(r any, produces string) any {
	resp, ok := r.(map[string]any)
	if !ok {
		return r
	}
	out := map[string]any{"description": resp["description"]}
	if schema, ok := resp["schema"]; ok {
		out["content"] = map[string]any{produces: map[string]any{"schema": rewriteRefs(schema)}}
	}
	return out
}

type formSchema struct {
	properties map[string]any
	required   []string
}

func newFormSchema() *formSchema {
	return &formSchema{properties: map[string]any{}}
}

func (f *formSchema) add(param map[string]any) {
	name, _ := param["name"].(string)
	prop := map[string]any{}
	if desc, ok := param["description"]; ok {
		prop["description"] = desc
	}
	if param["type"] == "file" {
		prop["type"] = "string"
		prop["format"] = "binary"
	} else {
		prop["type"] = param["type"]
	}
	f.properties[name] = prop
	if param["required"] == true {
		f.required = append(f.required, name)
	}
}

func (f *formSchema) empty() bool {
	return len(f.properties) == 0
}

func (f *formSchema) schema() map[string]any {
	s := map[string]any{"type": "object", "properties": f.properties}
	if len(f.required) > 0 {
		s["required"] = f.required
	}
	return s
}

// rewriteRefs points every $ref at components/schemas
func rewriteRefs(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				out[key] = strings.Replace(ref, definitionsPrefix, schemasPrefix, 1)
				continue
			}
			out[key] = rewriteRefs(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = rewriteRefs(item)
		}
		return out
	default:
		return v
	}
}

func mediaType(v any) string {
	for _, m := range asSlice(v) {
		if s, ok := m.(string); ok && s != "" {
			return s
		}
	}
	return defaultContentType
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}
