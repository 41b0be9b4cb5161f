package vault

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/splitchat/splitchat/internal/common"
)

// Documents are loosely typed on the wire; each use site gets a schema so a
// malformed blob is rejected at the boundary instead of surfacing later as a
// broken join or an empty contact card.

const messageSchemaJSON = `{
	"type": "object",
	"properties": {
		"message": {"type": "string"}
	},
	"required": ["message"]
}`

const profileSchemaJSON = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"phoneNumber": {"type": "string"}
	}
}`

var (
	messageSchema = mustCompileSchema("message.json", messageSchemaJSON)
	profileSchema = mustCompileSchema("profile.json", profileSchemaJSON)
)

func mustCompileSchema(name, text string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(text)))
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

// MessageDocument is the content record backing one chat message. It carries
// no routing metadata and no timestamp; both live in the message index.
type MessageDocument struct {
	Message string `json:"message"`
}

// Profile holds the user attributes stored alongside an identity.
type Profile struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// DecodeMessageDocument validates raw JSON against the message schema and
// maps it into a MessageDocument.
func DecodeMessageDocument(raw []byte) (*MessageDocument, error) {
	var doc MessageDocument
	if err := decodeValidated(raw, messageSchema, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeProfile validates raw JSON against the profile schema and maps it
// into a Profile.
func DecodeProfile(raw []byte) (*Profile, error) {
	var p Profile
	if err := decodeValidated(raw, profileSchema, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeValidated(raw []byte, schema *jsonschema.Schema, out any) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", common.ErrMalformedDocument)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("document failed validation: %v: %w", err, common.ErrMalformedDocument)
	}
	return json.Unmarshal(raw, out)
}
