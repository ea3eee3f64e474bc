// Package main issues bearer tokens for the news write routes.
// Usage: news-token --sub alice [--role admin|editor] [--ttl 24h]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	hauth "news-portal/internal/handler/http/auth"
	"news-portal/internal/observability/logging"
	"news-portal/pkg/config"
)

func main() {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	flag.StringVar(&subject, "sub", "", "Token subject (operator or client name)")
	flag.StringVar(&role, "role", hauth.RoleEditor, "Role claim: admin or editor")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))

	if subject == "" {
		fmt.Fprintln(os.Stderr, "Error: --sub is required")
		fmt.Fprintln(os.Stderr, "Usage: news-token --sub alice [--role admin|editor] [--ttl 24h]")
		os.Exit(2)
	}
	if role != hauth.RoleAdmin && role != hauth.RoleEditor {
		fmt.Fprintf(os.Stderr, "Error: invalid role %q (must be admin or editor)\n", role)
		os.Exit(2)
	}
	if ttl <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ttl must be positive")
		os.Exit(2)
	}

	secret := config.GetEnvString("NEWS_JWT_SECRET", "")
	if secret == "" {
		logger.Error("NEWS_JWT_SECRET must be set")
		os.Exit(1)
	}

	token, err := hauth.IssueToken([]byte(secret), subject, role, ttl)
	if err != nil {
		logger.Error("failed to sign token", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("token issued",
		slog.String("sub", subject),
		slog.String("role", role),
		slog.Duration("ttl", ttl))
	fmt.Println(token)
}
