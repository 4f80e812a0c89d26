// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetAPIContext(t *testing.T) {
	ctx, cancel := GetAPIContext(0)
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	require.False(t, hasDeadline)

	ctx, cancel = GetAPIContext(time.Minute)
	defer cancel()
	deadline, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)
	require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestMapWithError(t *testing.T) {
	out, err := MapWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, out)

	errBoom := errors.New("boom")
	_, err = MapWithError([]string{"1", "x"}, func(s string) (int, error) {
		if s == "x" {
			return 0, errBoom
		}
		return strconv.Atoi(s)
	})
	require.ErrorIs(t, err, errBoom)
}
