// Command token mints an admin JWT for the privileged refresh action, signed
// with the same secret the server reads from FTZOPS_JWT_SECRET.
// Usage: go run ./cmd/token [-subject ops@example.com]
package main

import (
	"flag"
	"fmt"
	"log"

	"ftzops/internal/config"
	"ftzops/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	subject := flag.String("subject", "ops", "token subject")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err := service.NewAuthService(cfg.JWT).IssueToken(*subject)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Println(token)
	return nil
}
