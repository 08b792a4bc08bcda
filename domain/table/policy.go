package table

import (
	"fmt"
	"strings"

	"sheetfuse/domain/core"
)

// Policy selects which columns survive into the merged output.
type Policy int

const (
	// PolicyUnion keeps every key ever seen, in first-encounter order.
	PolicyUnion Policy = iota
	// PolicyCommon keeps only keys present in at least two sheets, not
	// necessarily of the same file.
	PolicyCommon
)

func (p Policy) String() string {
	switch p {
	case PolicyUnion:
		return "union"
	case PolicyCommon:
		return "common"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy maps the config/CLI spelling to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "union":
		return PolicyUnion, nil
	case "common", "intersection":
		return PolicyCommon, nil
	}
	return PolicyUnion, fmt.Errorf("%w: %q", core.ErrUnknownPolicy, s)
}
