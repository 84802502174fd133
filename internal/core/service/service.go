// Package service holds the core engines: catalog filtering, the
// session-owned cart store and the assistant pipeline. Services depend
// on ports only and carry no transport concerns.
package service

import (
	"fmt"
	"strings"
)

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}
