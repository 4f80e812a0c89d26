// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrInvalidAddress     = errors.New("invalid address")
	ErrUnexpectedOutputs  = errors.New("unexpected number of outputs")
	ErrUnexpectedType     = errors.New("unexpected output type")
	ErrZeroReserve        = errors.New("dex has a zero reserve")
	ErrNotEnoughDexes     = errors.New("at least two dexes are needed")
	ErrUnsupportedArgType = errors.New("unsupported argument type")
)
