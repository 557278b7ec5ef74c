package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	"github.com/botthef/personal-site-backend/api"
	"github.com/botthef/personal-site-backend/config"
	"github.com/botthef/personal-site-backend/content"
	"github.com/botthef/personal-site-backend/database"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.FromEnv(config.New())

	var store database.Store
	if !cfg.UseMock {
		fmt.Printf("Connecting to live storage (region %s, table %s, bucket %s)...\n",
			cfg.AWSRegion, cfg.TableName, cfg.BucketName)

		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			fmt.Printf("Error loading AWS configuration: %v\n", err)
			os.Exit(1)
		}
		store = database.New(awsCfg, cfg)
	} else {
		fmt.Println("Using mock content backend")
	}

	service := content.NewService(cfg, store)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(service)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
