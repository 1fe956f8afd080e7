// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigintctl is a small CLI front end over the bigint package,
// useful for poking at arithmetic, base conversion, and primality
// checks from a shell without writing a throwaway Go program.
package main

import (
	"fmt"
	"os"

	"github.com/numerik/bigint"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigintctl",
		Short: "Arbitrary-precision integer arithmetic from the command line",
	}

	var base int
	calcCmd := &cobra.Command{
		Use:   "calc OP A B",
		Short: "Evaluate a binary operation: add, sub, mul, quo, rem, gcd, lcm",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, aStr, bStr := args[0], args[1], args[2]
			var a, b bigint.Int
			if _, ok := a.SetString(aStr, base); !ok {
				return fmt.Errorf("invalid operand %q", aStr)
			}
			if _, ok := b.SetString(bStr, base); !ok {
				return fmt.Errorf("invalid operand %q", bStr)
			}
			var z bigint.Int
			switch op {
			case "add":
				z.Add(&a, &b)
			case "sub":
				z.Sub(&a, &b)
			case "mul":
				z.Mul(&a, &b)
			case "quo":
				if _, _, err := z.QuoRemChecked(&a, &b, new(bigint.Int)); err != nil {
					return err
				}
			case "rem":
				var q bigint.Int
				if _, _, err := q.QuoRemChecked(&a, &b, &z); err != nil {
					return err
				}
			case "gcd":
				z.Gcd(&a, &b)
			case "lcm":
				z.Lcm(&a, &b)
			default:
				return fmt.Errorf("unknown op %q: want add, sub, mul, quo, rem, gcd, or lcm", op)
			}
			fmt.Println(z.Text(base))
			return nil
		},
	}
	calcCmd.Flags().IntVar(&base, "base", 10, "input/output base, 2-62")
	rootCmd.AddCommand(calcCmd)

	var toBase int
	convertCmd := &cobra.Command{
		Use:   "convert N",
		Short: "Print N (base 0, autodetected) in another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var x bigint.Int
			if _, ok := x.SetString(args[0], 0); !ok {
				return fmt.Errorf("invalid value %q", args[0])
			}
			fmt.Println(x.Text(toBase))
			return nil
		},
	}
	convertCmd.Flags().IntVar(&toBase, "to-base", 16, "output base, 2-62")
	rootCmd.AddCommand(convertCmd)

	primeCmd := &cobra.Command{
		Use:   "isprime N",
		Short: "Run a Miller-Rabin probable-primality check on N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var x bigint.Int
			if _, ok := x.SetString(args[0], 0); !ok {
				return fmt.Errorf("invalid value %q", args[0])
			}
			if x.ProbablyPrime(20) {
				fmt.Println("probably prime")
			} else {
				fmt.Println("composite")
			}
			return nil
		},
	}
	rootCmd.AddCommand(primeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
