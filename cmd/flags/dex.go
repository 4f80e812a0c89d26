// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Dex1Flag   = "dex1"
	Dex2Flag   = "dex2"
	TokenAFlag = "token-a"
	AmountFlag = "amount"
)

// FlashLoanFlags describe a two leg arbitrage: borrow token A, sell it on
// Dex1, buy it back on Dex2
type FlashLoanFlags struct {
	Dex1   string
	Dex2   string
	TokenA string
	Amount string
}

func (f *FlashLoanFlags) AddToCmd(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Dex1, Dex1Flag, "", "address of the DEX token A is sold on")
	cmd.Flags().StringVar(&f.Dex2, Dex2Flag, "", "address of the DEX token A is bought back on")
	cmd.Flags().StringVar(&f.TokenA, TokenAFlag, "", "address of the borrowed token, used to read its decimals")
	cmd.Flags().StringVar(&f.Amount, AmountFlag, "", "amount of token A to borrow (i.e. 1000 or 0.5)")
}

// Validate checks every flag was given
func (f *FlashLoanFlags) Validate() error {
	for _, flag := range []struct {
		name  string
		value string
	}{
		{Dex1Flag, f.Dex1},
		{Dex2Flag, f.Dex2},
		{TokenAFlag, f.TokenA},
		{AmountFlag, f.Amount},
	} {
		if flag.value == "" {
			return fmt.Errorf("--%s is required", flag.name)
		}
	}
	return nil
}
