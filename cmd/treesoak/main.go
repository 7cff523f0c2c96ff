// Package main runs randomized workloads against intrusive trees and checks their
// invariants as it goes. Each worker owns one tree and its elements; nothing is shared
// between workers.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	var cfg config
	flag.Int64Var(&cfg.seed, "seed", 1, "Seed of the first worker; worker i uses seed+i")
	flag.IntVar(&cfg.ops, "ops", 1_000_000, "Operations per worker")
	flag.IntVar(&cfg.keys, "keys", 2048, "Elements per worker, also the key range")
	flag.IntVar(&cfg.workers, "workers", 4, "Number of concurrent workers")
	flag.IntVar(&cfg.check, "check", 10_000, "Check invariants every this many operations")
	flag.StringVar(&cfg.policy, "policy", "eager", "Size policy: eager or lazy")
	flag.StringVar(&cfg.addr, "addr", "direct", "Edge representation: direct or offset")
	flag.Parse()
	defer glog.Flush()

	if err := cfg.validate(); err != nil {
		glog.Errorf("invalid flags: %v", err)
		glog.Flush()
		os.Exit(2)
	}
	if err := soak(cfg); err != nil {
		glog.Flush()
		glog.Fatalf("soak failed: %v", err)
	}
	glog.Infof("%d workers finished %d operations each", cfg.workers, cfg.ops)
}
