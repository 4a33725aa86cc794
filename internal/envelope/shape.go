package envelope

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

//go:embed envelope.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// ValidateShape checks that e is structurally sound without opening
// anything: required fields present, binary values long enough to be
// sealed blobs, permission and expiry well formed.
func ValidateShape(e *Envelope) error {
	raw, err := Serialize(e)
	if err != nil {
		return err
	}
	_, err = ValidateShapeJSON(raw)
	return err
}

// ValidateShapeJSON validates a serialized envelope and returns it decoded.
func ValidateShapeJSON(raw []byte) (*Envelope, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrShape, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
		}
		return nil, fmt.Errorf("%w: %s", common.ErrShape, strings.Join(msgs, "; "))
	}

	e, err := Deserialize(raw)
	if err != nil {
		return nil, err
	}
	if err := checkSizes(e); err != nil {
		return nil, err
	}
	return e, nil
}

func checkSizes(e *Envelope) error {
	if len(e.WrappedSessionKey) < MinSealedSize+SessionKeySize {
		return fmt.Errorf("%w: wrapped_session_key too short (%d bytes)", common.ErrShape, len(e.WrappedSessionKey))
	}
	for name, blob := range e.Fields {
		if len(blob) < MinSealedSize {
			return fmt.Errorf("%w: field %q too short (%d bytes)", common.ErrShape, name, len(blob))
		}
	}
	if len(e.Signature) > 0 && len(e.SignerPublicKey) == 0 {
		return fmt.Errorf("%w: signature without signer_public_key", common.ErrShape)
	}
	if e.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: expires_at is zero", common.ErrShape)
	}
	return nil
}
