// Command mststep computes a Minimum Spanning Tree one step at a time from
// an adjacency matrix, with Kruskal's or Prim's algorithm.
//
// Usage:
//
//	mststep generate -n 5 --random --seed 7 > g.txt
//	mststep step -f g.txt -a prim -s 2 --steps 3
//	mststep run -f g.txt --speed 300
//	mststep export -f g.txt --format dot | neato -n -Tpng > g.png
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.WithError(err).Error("mststep failed")
		os.Exit(1)
	}
}
