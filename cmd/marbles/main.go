// Copyright (C) 2026, the weighted-probability authors. All rights reserved.
// See the file LICENSE for licensing terms.

// marbles draws from a weighted bag of marbles, the canonical demonstration
// of the alias method: one red marble, two blue, sampled in O(1) per draw.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/niko-dunixi/weighted-probability/sampler"
)

const (
	red  = "red"
	blue = "blue"
)

func main() {
	draws := pflag.Int("draws", 10, "number of marbles to draw from the bag")
	seed := pflag.Int64("seed", 0, "if non-zero, seed the sampler for reproducible draws")
	pflag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	bag := sampler.NewWeighted[string]()
	if err := bag.Initialize([]sampler.WeightedTuple[string]{
		sampler.NewWeightedTuple(1, red),
		sampler.NewWeightedTuple(2, blue),
	}); err != nil {
		log.Fatal("failed to fill the marble bag", zap.Error(err))
	}
	if *seed != 0 {
		bag.Seed(*seed)
	}

	counts := make(map[string]int, 2)
	for i := 0; i < *draws; i++ {
		marble, err := bag.Sample()
		if err != nil {
			log.Fatal("failed to draw a marble", zap.Error(err))
		}
		counts[marble]++
		log.Info("drew a marble", zap.String("color", marble))
	}
	log.Info("bag emptied",
		zap.Int("draws", *draws),
		zap.Int(red, counts[red]),
		zap.Int(blue, counts[blue]),
	)
}
