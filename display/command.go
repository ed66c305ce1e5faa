package display

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/milassist/errors"
)

// OutputEnv forces JSON output when set to "json".
const OutputEnv = "MILASSIST_OUTPUT"

// ShouldOutputJSON reports whether cmd should print JSON. An explicit --json
// flag wins, then the root persistent flag, then MILASSIST_OUTPUT.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return jsonFromEnv()
	}

	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("json")
		return v
	}

	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return jsonFromEnv()
}

func jsonFromEnv() bool {
	return strings.EqualFold(os.Getenv(OutputEnv), "json")
}

// OutputJSON marshals and prints JSON using display.MarshalJSON
func OutputJSON(cmd *cobra.Command, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
