// Command token issues an access token accepted by the vaultshare server.
// It is meant for the identity provider that authenticates users and for
// local development; the server itself never issues tokens.
//
//	token -s <secret> -u alice -ttl 1h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/server/auth"
)

func main() {
	var (
		secret string
		user   string
		ttl    time.Duration
	)
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	fs.StringVar(&secret, "s", "", "JWT secret shared with the server")
	fs.StringVar(&user, "u", "", "identity to issue the token for")
	fs.DurationVar(&ttl, "ttl", time.Hour, "token validity")
	_ = fs.Parse(os.Args[1:])

	if secret == "" || user == "" {
		fs.Usage()
		os.Exit(2)
	}

	tok, err := auth.GenerateToken(user, []byte(secret), ttl)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(tok)
}
