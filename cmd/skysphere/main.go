package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"skysphere/internal/skysphere"
)

func main() {
	skysphere.Debug = os.Getenv("DEBUG") != ""
	skysphere.Progress = os.Getenv("NO_PROGRESS") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := skysphere.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
