package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Ostashev/hw05-final/app/cache"
	"github.com/Ostashev/hw05-final/app/media"
	"github.com/Ostashev/hw05-final/app/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("yatube version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: yatube <command> [options]
Commands:
  help                Display this help message.
  version             Show version information.
  serve [options]     Run the blog service.
    --addr <addr>         Listen address (default :8080).
    --db <path>           Badger database directory (default data/badger).
    --media <path>        Media directory for post images (default data/media).
    --session-key <key>   Session cookie key; random per run when unset
                          (or set YATUBE_SESSION_KEY).
`
	fmt.Println(helpText)
}

func serve(args []string) {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := flags.String("addr", ":8080", "listen address")
	dbPath := flags.String("db", "data/badger", "badger database directory")
	mediaPath := flags.String("media", "data/media", "media directory")
	sessionKey := flags.String("session-key", "", "session cookie key")
	if err := flags.Parse(args); err != nil {
		os.Exit(1)
	}

	key := resolveSessionKey(*sessionKey)

	opts := badger.DefaultOptions(*dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	mediaStore, err := media.NewStore(*mediaPath)
	if err != nil {
		log.Fatalf("Failed to set up media store: %v", err)
	}

	feedCache, err := cache.New(cache.DefaultTTL)
	if err != nil {
		log.Fatalf("Failed to set up feed cache: %v", err)
	}
	defer feedCache.Close()

	router := routes.Setup(db, mediaStore, feedCache, key)

	log.Printf("Starting blog service on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// resolveSessionKey prefers the flag, then the environment, then a
// random per-process key. A random key logs out all sessions on
// restart, so it warns.
func resolveSessionKey(flagValue string) []byte {
	if flagValue != "" {
		return []byte(flagValue)
	}
	if env := os.Getenv("YATUBE_SESSION_KEY"); env != "" {
		return []byte(env)
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("Failed to generate session key: %v", err)
	}
	log.Println("No session key configured; using a random key, existing sessions are invalid")
	return key
}
