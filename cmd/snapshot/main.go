// Command snapshot uploads the current directory to S3-compatible storage
// and prints the object key. It reads the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/server"
	"github.com/dmitrijs2005/userdirectory/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	key, err := app.Snapshot(ctx)
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}

	fmt.Println(key)
}
