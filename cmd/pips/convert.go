package main

import (
	"fmt"
	"os"

	"github.com/pipslab/pips/loader"
)

func runConvert(path, difficulty string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text, err := loader.ConvertJSONToText(data, loader.Difficulty(difficulty))
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
