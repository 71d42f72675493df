// Command devtoken prints a signed bearer token for local testing against a server that shares
// the same JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"weeklyslots/config"
	"weeklyslots/internal/adapters/auth"
)

func main() {
	user := flag.String("user", "", "user id to put in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -user <id> [-ttl 24h]")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer).Issue(*user, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
