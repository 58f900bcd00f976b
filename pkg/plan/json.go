package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

func unmarshalJSON(data []byte, pf *planFile) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(pf); err != nil {
		return err
	}
	// Reject trailing garbage, including a second JSON value.
	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("trailing data after plan")
		}
		return err
	}
	return nil
}
