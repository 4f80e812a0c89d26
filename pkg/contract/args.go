// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
)

// ParseCallArgs converts command line strings into the go values the ABI
// packer expects for [inputs]
func ParseCallArgs(inputs abi.Arguments, args []string) ([]interface{}, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(inputs), len(args))
	}
	params := make([]interface{}, 0, len(args))
	for i, input := range inputs {
		param, err := parseArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, input.Type.String(), err)
		}
		params = append(params, param)
	}
	return params, nil
}

func parseArg(t abi.Type, arg string) (interface{}, error) {
	arg = strings.TrimSpace(arg)
	switch t.T {
	case abi.AddressTy:
		return evm.ParseAddress(arg)
	case abi.BoolTy:
		return strconv.ParseBool(arg)
	case abi.StringTy:
		return arg, nil
	case abi.BytesTy:
		return hexutil.Decode(arg)
	case abi.UintTy:
		n, ok := new(big.Int).SetString(arg, 0)
		if !ok || n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("invalid uint%d value %q", t.Size, arg)
		}
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	case abi.IntTy:
		n, ok := new(big.Int).SetString(arg, 0)
		if !ok || !fitsInt(n, t.Size) {
			return nil, fmt.Errorf("invalid int%d value %q", t.Size, arg)
		}
		switch t.Size {
		case 8:
			return int8(n.Int64()), nil
		case 16:
			return int16(n.Int64()), nil
		case 32:
			return int32(n.Int64()), nil
		case 64:
			return n.Int64(), nil
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedArgType, t.String())
}

// fitsInt reports whether [n] is within [-2^(size-1), 2^(size-1)-1]
func fitsInt(n *big.Int, size int) bool {
	upper := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
	lower := new(big.Int).Neg(upper)
	upper.Sub(upper, big.NewInt(1))
	return n.Cmp(lower) >= 0 && n.Cmp(upper) <= 0
}

// FormatValue renders a decoded output value for the user
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case common.Address:
		return value.Hex()
	case *big.Int:
		return value.String()
	case []byte:
		return hexutil.Encode(value)
	case [32]byte:
		return hexutil.Encode(value[:])
	default:
		return fmt.Sprint(value)
	}
}
