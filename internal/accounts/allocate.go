package accounts

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrRangeExhausted is returned when every code in a parent's 999-slot
// block is already taken.
var ErrRangeExhausted = errors.New("account code range exhausted")

// NextChildCode picks the lowest-friction unused child code inside the
// parent's numeric block (parent+1 .. parent+999). Preference order:
//
//  1. round hundreds: parent+100, +200, ... +900
//  2. round tens: parent+10, +20, ... +990
//  3. dense: parent+1 .. parent+999 by 1
//
// Round-hundred codes stay human-readable for as long as possible before
// falling back to dense packing.
func NextChildCode(parentCode string, existing map[string]bool) (string, error) {
	parent, err := strconv.Atoi(parentCode)
	if err != nil {
		return "", fmt.Errorf("parsing parent code %q: %w", parentCode, err)
	}

	for offset := 100; offset <= 900; offset += 100 {
		if code := strconv.Itoa(parent + offset); !existing[code] {
			return code, nil
		}
	}

	for offset := 10; offset <= 990; offset += 10 {
		if code := strconv.Itoa(parent + offset); !existing[code] {
			return code, nil
		}
	}

	for offset := 1; offset <= 999; offset++ {
		if code := strconv.Itoa(parent + offset); !existing[code] {
			return code, nil
		}
	}

	return "", fmt.Errorf("parent %s: %w", parentCode, ErrRangeExhausted)
}

// InBlock reports whether childCode lies strictly inside the parent's
// numeric block (parent, parent+999].
func InBlock(parentCode, childCode string) bool {
	parent, err := strconv.Atoi(parentCode)
	if err != nil {
		return false
	}
	child, err := strconv.Atoi(childCode)
	if err != nil {
		return false
	}
	return child > parent && child <= parent+999
}
