package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 64 << 10

// errInvalidRequest marks a request body that failed decoding or validation.
var errInvalidRequest = errors.New("invalid request")

// Request body schemas by name.
var schemas = map[string]string{
	"login": `{
		"type": "object",
		"required": ["username", "password"],
		"properties": {
			"username": {"type": "string"},
			"password": {"type": "string"}
		}
	}`,
	"signup": `{
		"type": "object",
		"required": ["username", "email", "password", "confirm"],
		"properties": {
			"username": {"type": "string", "minLength": 1},
			"email": {"type": "string"},
			"password": {"type": "string"},
			"confirm": {"type": "string"}
		}
	}`,
	"navigate": `{
		"type": "object",
		"required": ["page"],
		"properties": {"page": {"type": "string"}}
	}`,
	"text": `{
		"type": "object",
		"required": ["text"],
		"properties": {"text": {"type": "string", "maxLength": 2000}}
	}`,
	"chat": `{
		"type": "object",
		"required": ["message"],
		"properties": {"message": {"type": "string", "maxLength": 2000}}
	}`,
	"filter": `{
		"type": "object",
		"required": ["category"],
		"properties": {"category": {"type": "string"}}
	}`,
	"profile": `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"name": {"type": "string", "maxLength": 200},
			"email": {"type": "string", "maxLength": 320},
			"bio": {"type": "string", "maxLength": 2000}
		}
	}`,
	"settings": `{
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"theme": {"enum": ["light", "dark"]},
			"font_size": {"enum": ["small", "medium", "large"]},
			"show_progress": {"type": "boolean"},
			"auto_play": {"type": "boolean"},
			"repeat_videos": {"type": "boolean"},
			"learning_pace": {"enum": ["beginner", "intermediate", "advanced"]},
			"daily_reminder": {"type": "boolean"},
			"reminder_time": {"type": "string", "pattern": "^$|^([01][0-9]|2[0-3]):[0-5][0-9]$"},
			"achievement_notifications": {"type": "boolean"},
			"progress_emails": {"type": "boolean"},
			"sound_effects": {"type": "boolean"},
			"voice_feedback": {"type": "boolean"},
			"voice_speed": {"type": "number", "minimum": 0.5, "maximum": 2}
		}
	}`,
	"reset": `{
		"type": "object",
		"required": ["confirm"],
		"properties": {"confirm": {"type": "boolean"}}
	}`,
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}
	src, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("no schema named %q", name)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// decodeJSON validates r's body against the named schema and then decodes
// it into dst. Fields missing from the body keep dst's current values.
func decodeJSON(r *http.Request, schema string, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", errInvalidRequest, err)
	}
	if len(body) > maxJSONBody {
		return fmt.Errorf("%w: body exceeds %d bytes", errInvalidRequest, maxJSONBody)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: malformed JSON: %w", errInvalidRequest, err)
	}

	sch, err := compiledSchema(schema)
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s", errInvalidRequest, detailLine(verr.Error()))
		}
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
	return nil
}

func detailLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return s
}
