package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/internal/bot"
)

type BotsCmd struct{}

func (c *BotsCmd) Run(logger *log.Logger) error {
	fmt.Println("Bundled strategies:")
	for _, strategy := range bot.Strategies() {
		fmt.Printf("  %s\n", strategy)
	}
	return nil
}
