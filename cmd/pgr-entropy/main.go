package main

/*
pgr-entropy computes the diffusion entropy of a weighted assembly graph
given as GFA-style link lines, and optionally writes the per-node diffusion
weights as a TSV.
*/

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/pangene/pgr/diffusion"
)

var (
	maxNodes = flag.Int("max-nodes", diffusion.DefaultOpts.MaxNodes, "Upper bound on graph node count; larger graphs are rejected (dense quadratic matrix). 0 = no bound")
	outPath  = flag.String("out", "", "Optional output TSV path for per-node diffusion weights")
)

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] gfapath\n", os.Args[0])
	flag.PrintDefaults()
}

func writeWeights(path string, weights []diffusion.NodeWeight) (err error) {
	ctx := vcontext.Background()
	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := dst.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	w := tsv.NewWriter(dst.Writer(ctx))
	w.WriteString("#NODE\tWEIGHT")
	if err = w.EndLine(); err != nil {
		return
	}
	for _, nw := range weights {
		w.WriteString(strconv.Itoa(nw.Node))
		w.WriteString(strconv.FormatFloat(nw.Weight, 'g', -1, 64))
		if err = w.EndLine(); err != nil {
			return
		}
	}
	return w.Flush()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Expected exactly one positional argument (gfapath); got %d", flag.NArg())
	}
	gfaPath := flag.Arg(0)

	g, err := diffusion.FromPath(gfaPath)
	if err != nil {
		log.Fatalf("Reading %s: %v", gfaPath, err)
	}
	log.Printf("Loaded %d node(s) from %s", g.NumNodes(), gfaPath)

	entropy, weights, err := diffusion.Entropy(g, diffusion.Opts{MaxNodes: *maxNodes})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%g\n", entropy)

	if *outPath != "" {
		if err := writeWeights(*outPath, weights); err != nil {
			log.Fatalf("Writing %s: %v", *outPath, err)
		}
		log.Printf("Wrote %d weight(s) to %s", len(weights), *outPath)
	}
}
