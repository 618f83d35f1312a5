package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and validates it
// when object is validatable.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if v, ok := object.(validation.Validatable); ok {
		if err = v.Validate(); err != nil {
			return fmt.Errorf("validating payload: %w", err)
		}
	}

	return nil
}
