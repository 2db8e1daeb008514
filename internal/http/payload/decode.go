package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Decoder reads JSON request bodies. Unknown members are ignored so older
// clients sending extra fields keep working.
type Decoder struct{}

func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	if err = json.NewDecoder(r.Body).Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
