// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
)

func removeSurroundingParenthesis(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		if string(s[0]) != "(" || string(s[len(s)-1]) != ")" {
			return "", fmt.Errorf("expected esp %q to be surrounded by parenthesis", s)
		}
		s = s[1 : len(s)-1]
	}
	return s, nil
}

func getWords(s string) []string {
	words := []string{}
	word := ""
	insideParenthesis := false
	for _, rune := range s {
		c := string(rune)
		if insideParenthesis {
			if c == ")" {
				words = append(words, word)
				word = ""
				insideParenthesis = false
			} else {
				word += c
			}
			continue
		}
		if c == " " || c == "," || c == "(" {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		}
		if c == " " || c == "," {
			continue
		}
		if c == "(" {
			insideParenthesis = true
			continue
		}
		word += c
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

func getMap(
	types []string,
	params ...interface{},
) []map[string]interface{} {
	r := []map[string]interface{}{}
	for i, t := range types {
		spaceIndex := strings.Index(t, " ")
		commaIndex := strings.Index(t, ",")
		m := map[string]interface{}{}
		if spaceIndex != -1 || commaIndex != -1 {
			// complex type
			var param interface{}
			if i < len(params) {
				param = params[i]
			}
			m["components"] = getMap(getWords(t), param)
			m["internalType"] = "tuple"
			m["type"] = "tuple"
			m["name"] = ""
		} else {
			name := ""
			if len(params) == 1 && params[0] != nil {
				rt := reflect.TypeOf(params[0])
				if rt.Kind() == reflect.Struct && rt.NumField() == len(types) {
					name = rt.Field(i).Name
				}
			}
			m["internalType"] = t
			m["type"] = t
			m["name"] = name
		}
		r = append(r, m)
	}
	return r
}

// ParseMethodEsp converts a compact method description like
// "balanceOf(address)->(uint256)" into the method name and a
// one function ABI json for it
func ParseMethodEsp(
	methodEsp string,
	view bool,
	params ...interface{},
) (string, string, error) {
	index := strings.Index(methodEsp, "(")
	if index == -1 {
		return "", "", fmt.Errorf("expected method esp %q to contain an input parenthesis", methodEsp)
	}
	methodName := strings.TrimSpace(methodEsp[:index])
	if methodName == "" {
		return "", "", fmt.Errorf("missing method name on esp %q", methodEsp)
	}
	methodTypes := methodEsp[index:]
	methodInputs := ""
	methodOutputs := ""
	index = strings.Index(methodTypes, "->")
	if index == -1 {
		methodInputs = methodTypes
	} else {
		methodInputs = methodTypes[:index]
		methodOutputs = methodTypes[index+2:]
	}
	var err error
	methodInputs, err = removeSurroundingParenthesis(methodInputs)
	if err != nil {
		return "", "", err
	}
	methodOutputs, err = removeSurroundingParenthesis(methodOutputs)
	if err != nil {
		return "", "", err
	}
	inputTypes := getWords(methodInputs)
	outputTypes := getWords(methodOutputs)
	inputs := getMap(inputTypes, params...)
	outputs := getMap(outputTypes)
	abiMap := []map[string]interface{}{
		{
			"inputs":          inputs,
			"outputs":         outputs,
			"name":            methodName,
			"stateMutability": "nonpayable",
			"type":            "function",
		},
	}
	if view {
		abiMap[0]["stateMutability"] = "view"
	}
	abiBytes, err := json.MarshalIndent(abiMap, "", "  ")
	if err != nil {
		return "", "", err
	}
	return methodName, string(abiBytes), nil
}

// ParseABI parses a json ABI description
func ParseABI(abiJSON string) (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failure parsing contract abi: %w", err)
	}
	return parsed, nil
}

// Bind creates a read only handle for the contract at [contractAddress]
func Bind(
	contractAddress common.Address,
	contractABI abi.ABI,
	caller bind.ContractCaller,
) *bind.BoundContract {
	return bind.NewBoundContract(contractAddress, contractABI, caller, nil, nil)
}

// CallWithABI makes a read only call of [methodName] described in [abiJSON]
func CallWithABI(
	ctx context.Context,
	caller bind.ContractCaller,
	contractAddress common.Address,
	abiJSON string,
	methodName string,
	params ...interface{},
) ([]interface{}, error) {
	contractABI, err := ParseABI(abiJSON)
	if err != nil {
		return nil, err
	}
	if _, ok := contractABI.Methods[methodName]; !ok {
		return nil, fmt.Errorf("method %q not found on contract abi", methodName)
	}
	contract := Bind(contractAddress, contractABI, caller)
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, methodName, params...); err != nil {
		return nil, fmt.Errorf("failure calling %s on contract %s: %w", methodName, contractAddress.Hex(), err)
	}
	return out, nil
}

// CallToMethod makes a read only call described by [methodEsp]
func CallToMethod(
	ctx context.Context,
	caller bind.ContractCaller,
	contractAddress common.Address,
	methodEsp string,
	params ...interface{},
) ([]interface{}, error) {
	methodName, methodABI, err := ParseMethodEsp(methodEsp, true, params...)
	if err != nil {
		return nil, err
	}
	return CallWithABI(ctx, caller, contractAddress, methodABI, methodName, params...)
}

// GetSmartContractCallResult extracts the single return value of [methodName]
func GetSmartContractCallResult[T any](methodName string, out []interface{}) (T, error) {
	var result T
	if len(out) != 1 {
		return result, fmt.Errorf("%w at %s call: expected 1, got %d", constants.ErrUnexpectedOutputs, methodName, len(out))
	}
	result, ok := out[0].(T)
	if !ok {
		return result, fmt.Errorf("%w at %s call: expected %T, got %T", constants.ErrUnexpectedType, methodName, result, out[0])
	}
	return result, nil
}
