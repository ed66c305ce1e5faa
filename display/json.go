package display

import (
	"encoding/json"
)

// MarshalJSON pretty prints for terminals and compacts when the output is
// requested through MILASSIST_OUTPUT, where a machine reads it.
func MarshalJSON(v interface{}) ([]byte, error) {
	if jsonFromEnv() {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
