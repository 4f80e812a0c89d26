// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"strings"
)

// SplitComaSeparatedString splits and trims a comma-separated string into a slice of strings.
// Empty items are dropped.
func SplitComaSeparatedString(s string) []string {
	items := Map(strings.Split(s, ","), strings.TrimSpace)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitComaSeparatedStrings flattens [s], splitting every element on commas
func SplitComaSeparatedStrings(s []string) []string {
	out := []string{}
	for _, item := range s {
		out = append(out, SplitComaSeparatedString(item)...)
	}
	return out
}
