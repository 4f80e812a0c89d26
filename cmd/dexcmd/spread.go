// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dexcmd

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/dex"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/ava-labs/libevm/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// hardhat-cli dex spread
func newSpreadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spread [dexAddress] [dexAddress...]",
		Short: "Compare the A to B price across pools",
		Long: `The dex spread command reads the reserves of every given pool, prints the
A to B price of each, and the spread of every pair of pools. The widest
spread is reported as an opportunity when it reaches 1%.

Pools can be given as separate arguments or as comma separated lists.`,
		RunE: spread,
		Args: cobrautils.MinimumNArgs(1),
	}
}

func spread(_ *cobra.Command, args []string) error {
	dexAddresses, err := evm.ParseAddresses(utils.SplitComaSeparatedStrings(args))
	if err != nil {
		return err
	}
	if len(dexAddresses) < 2 {
		return constants.ErrNotEnoughDexes
	}
	ctx, cancel := app.GetAPIContext()
	defer cancel()
	client, err := app.GetNodeClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	reserves, err := utils.MapWithError(dexAddresses, func(dexAddress common.Address) (dex.Reserves, error) {
		return dex.GetReserves(ctx, client, dexAddress)
	})
	if err != nil {
		return err
	}
	spreads, err := dex.ComputeSpreads(reserves)
	if err != nil {
		return err
	}

	t := ux.DefaultTable("Pools", table.Row{"#", "DEX", "Reserve A", "Reserve B", "Price A->B"})
	for i, r := range reserves {
		price, _ := r.PriceAToB()
		t.AppendRow(table.Row{i, r.Dex.Hex(), r.ReserveA, r.ReserveB, fmt.Sprintf("%.6f", price)})
	}
	ux.Logger.PrintTable(t)

	t = ux.DefaultTable("Spreads", table.Row{"Pair", "Price 1", "Price 2", "Spread"})
	for _, s := range spreads {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d-%d", s.Dex1, s.Dex2),
			fmt.Sprintf("%.6f", s.Price1),
			fmt.Sprintf("%.6f", s.Price2),
			fmt.Sprintf("%.2f%%", s.Spread),
		})
	}
	ux.Logger.PrintTable(t)

	best, _ := dex.BestSpread(spreads)
	bestPair := fmt.Sprintf("%s / %s", reserves[best.Dex1].Dex.Hex(), reserves[best.Dex2].Dex.Hex())
	if best.IsArbitrable() {
		ux.Logger.GreenCheckmarkToUser("Arbitrage opportunity: %.2f%% spread between %s", best.Spread, bestPair)
	} else {
		ux.Logger.RedXToUser("No arbitrage opportunity: best spread %.2f%% between %s is below %.0f%%",
			best.Spread, bestPair, constants.MinArbitrageSpread)
	}
	return nil
}
