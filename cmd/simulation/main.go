package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"property-assistant-be/internal/bootstrap"
	"property-assistant-be/internal/config"
	"property-assistant-be/internal/dto"
	"property-assistant-be/internal/model"
	"property-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Terminal chat client that drives the conversation engine in-process.
// Useful for exercising the dialogue without a browser or a websocket.
func main() {
	fmt.Println("=== Property Assistant Simulation ===")
	fmt.Println("Type 'exit' to quit.")

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RentalSearch{},
		&model.RentalMatch{},
		&model.RepairRequest{},
	); err != nil {
		log.Fatalf("Unable to migrate schema: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	engine := container.ConversationService
	sessionID := uuid.NewString()

	botColor := color.New(color.FgCyan)
	userColor := color.New(color.FgGreen)
	optionColor := color.New(color.FgYellow)

	// Kick off onboarding the way a fresh websocket client would.
	printResponse(botColor, optionColor, engine.Handle(context.Background(), sessionID, &dto.ChatClientMessage{Text: "hi"}))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		userColor.Print("you> ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "exit") {
			return
		}

		start := time.Now()
		response := engine.Handle(context.Background(), sessionID, &dto.ChatClientMessage{Text: text})
		elapsed := time.Since(start)

		fmt.Printf("(%v)\n", elapsed)
		printResponse(botColor, optionColor, response)
	}
}

func printResponse(botColor, optionColor *color.Color, response *dto.ChatBotResponse) {
	botColor.Printf("bot> %s\n", response.Text)

	for _, p := range response.Properties {
		botColor.Printf("     🏠 %s | %s | £%d/month | %d bed | score %d\n",
			p.Title, p.Location, p.PricePerMonth, p.Bedrooms, p.Score)
	}

	if len(response.Options) > 0 {
		labels := make([]string, 0, len(response.Options))
		for _, o := range response.Options {
			labels = append(labels, o.Label)
		}
		optionColor.Printf("     [%s]\n", strings.Join(labels, " | "))
	}
}
