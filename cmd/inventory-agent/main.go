package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pedropiresdev/c2s-challenge/internal/agent"
	"github.com/pedropiresdev/c2s-challenge/internal/common/config"
	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
)

var configPath = flag.String("config", "configs/inventory-service.json", "config file path")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Backend, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	ctx := context.Background()
	assistant, err := agent.New(ctx, cfg.Agent)
	if err != nil {
		log.Fatalf("failed to init agent: %v", err)
	}

	fmt.Println("Inventory assistant ready. Ask about the automobiles in stock (\"exit\" to quit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := assistant.Ask(ctx, question)
		if err != nil {
			log.Errorf("agent error: %v", err)
			continue
		}
		fmt.Println(answer)
	}
}
