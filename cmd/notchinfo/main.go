// Command notchinfo inspects and converts stochastic-search notch lists.
//
// Usage:
//
//	notchinfo [flags] <notch-list-file>
//
// Examples:
//
//	notchinfo O3_notchlist.txt
//	notchinfo -v O3_notchlist.txt
//	notchinfo -check 60.02 O3_notchlist.txt
//	notchinfo -legacy -convert O3_converted.txt O2_notchlist_legacy.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-gw/gw/notch"
)

func main() {
	legacy := flag.Bool("legacy", false, "input uses the pre-pyGWB legacy layout")
	verbose := flag.Bool("v", false, "print every notch, not just the summary")
	check := flag.Float64("check", -1, "report whether the given frequency (Hz) is notched")
	convert := flag.String("convert", "", "write the list back out in the current format")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notchinfo [flags] <notch-list-file>\n\n")
		fmt.Fprintf(os.Stderr, "Inspects and converts stochastic-search notch lists.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  notchinfo O3_notchlist.txt\n")
		fmt.Fprintf(os.Stderr, "  notchinfo -check 60.02 O3_notchlist.txt\n")
		fmt.Fprintf(os.Stderr, "  notchinfo -legacy -convert out.txt legacy.txt\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	load := notch.LoadFile
	if *legacy {
		load = notch.LoadLegacyFile
	}
	list, err := load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	list.Sort()

	printSummary(filename, list)
	if *verbose {
		printNotches(list)
	}

	if *check >= 0 {
		fmt.Printf("%g Hz notched: %v\n", *check, list.CheckFrequency(*check))
	}

	if *convert != "" {
		if err := list.SaveToFile(*convert); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *convert)
	}
}

func printSummary(filename string, list *notch.List) {
	total := 0.0
	for _, n := range list.Notches() {
		total += n.MaximumFrequency - n.MinimumFrequency
	}

	fmt.Printf("%s: %d notches\n", filename, list.Len())
	if list.Len() > 0 {
		fmt.Printf("span: %g - %g Hz\n", list.At(0).MinimumFrequency, maxFrequency(list))
		fmt.Printf("notched bandwidth: %g Hz\n", total)
	}
}

func printNotches(list *notch.List) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Min [Hz]\tMax [Hz]\tDescription\n")
	fmt.Fprintf(tw, "--------\t--------\t-----------\n")
	for _, n := range list.Notches() {
		fmt.Fprintf(tw, "%g\t%g\t%s\n", n.MinimumFrequency, n.MaximumFrequency, n.Description)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// maxFrequency returns the largest maximum over the list. The list is
// sorted by minimum frequency, so the last notch need not carry the
// largest maximum.
func maxFrequency(list *notch.List) float64 {
	m := list.At(0).MaximumFrequency
	for _, n := range list.Notches() {
		if n.MaximumFrequency > m {
			m = n.MaximumFrequency
		}
	}
	return m
}
