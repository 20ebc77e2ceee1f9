// Command ewkerror inspects engine error fixtures through the ewk error
// handle adapter.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmgilman/go/ewk/errors"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		data, marshalErr := json.Marshal(errors.ToJSON(err))
		if marshalErr != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintln(os.Stderr, string(data))
		}
		os.Exit(1)
	}
}
