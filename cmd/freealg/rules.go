package main

import (
	"fmt"
	"math/big"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comalice/freealg"
	"github.com/comalice/freealg/module"
	"github.com/comalice/freealg/monoid"
	"github.com/comalice/freealg/ring"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules and the capabilities they declare",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WORD RULE\tREWRITING\tINVERTIBLE\tASSOCIATIVE\tCOMMUTATIVE\tBULK")
			for _, r := range []struct {
				name string
				caps monoid.Capabilities
			}{
				{"none", monoid.CapabilitiesOf[string, monoid.None]()},
				{"concat", monoid.CapabilitiesOf[string, monoid.Concat[string]]()},
				{"cancel", monoid.CapabilitiesOf[monoid.Gen[string], monoid.Cancel[string]]()},
				{"compress", monoid.CapabilitiesOf[monoid.Exp[string], monoid.Compress[string]]()},
			} {
				c := r.caps
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.name, yes(c.Rewriting), yes(c.Invertible), yes(c.Associative), yes(c.Commutative), yes(c.BulkWord && c.BulkSeq))
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "ALGEBRA RULE\tMULTIPLICATIVE\tASSOCIATIVE\tCOMMUTATIVE\tUNITAL")
			for _, r := range []struct {
				name string
				caps module.Capabilities
			}{
				{"free", module.CapabilitiesOf[*big.Rat, string, module.Free]()},
				{"add", module.CapabilitiesOf[*big.Rat, int64, module.AddRule[*big.Rat, int64, ring.Int]]()},
				{"mul", module.CapabilitiesOf[*big.Rat, int64, module.MulRule[*big.Rat, int64, ring.Int]]()},
				{"word", module.CapabilitiesOf[*big.Rat, *freealg.FreeMonoid[string], module.WordRule[*big.Rat, string, monoid.Concat[string], monoid.Concat[string]]]()},
			} {
				c := r.caps
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.name, yes(c.Multiplicative), yes(c.Associative), yes(c.Commutative), yes(c.Unital))
			}
			return tw.Flush()
		},
	}
}

func yes(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
