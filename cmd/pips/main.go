package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
)

const (
	usage = "usage: pips [solve|count|generate|convert] <path> [flags]"

	exitOK  = 0
	exitErr = 1
)

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	ctx := context.Background()

	switch args[0] {
	case "solve":
		if len(args) < 2 {
			return errors.New("usage: pips solve <path>")
		}
		return runSolve(ctx, args[1])

	case "count":
		if len(args) < 2 {
			return errors.New("usage: pips count <path>")
		}
		return runCount(ctx, args[1])

	case "generate":
		seed := uint64(0)
		if len(args) > 1 {
			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			seed = v
		}
		return runGenerate(seed)

	case "convert":
		if len(args) < 3 {
			return errors.New("usage: pips convert <path.json> <easy|medium|hard>")
		}
		return runConvert(args[1], args[2])

	default:
		return errors.New(usage)
	}
}
