// Command gatewayhelper exercises the gateway endpoints from the shell.
// It reads credentials from the environment or a .env file and prints
// results to stdout, one command per invocation.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	sealgate "github.com/sealgate/client-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: gatewayhelper <command> [args]\n\ncommands:\n" +
			"  credits\n" +
			"  pubkey <id>\n" +
			"  capabilities <id>\n" +
			"  lookup-phone <number>\n" +
			"  lookup-email <address>\n" +
			"  send-simple <id> <text>\n" +
			"  send-e2e <id> <text>")
	}

	// Best effort; environment variables win over the file.
	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "credits":
		credits(ctx)
	case "pubkey":
		pubkey(ctx, arg(2, "pubkey <id>"))
	case "capabilities":
		capabilities(ctx, arg(2, "capabilities <id>"))
	case "lookup-phone":
		lookupPhone(ctx, arg(2, "lookup-phone <number>"))
	case "lookup-email":
		lookupEmail(ctx, arg(2, "lookup-email <address>"))
	case "send-simple":
		sendSimple(ctx, arg(2, "send-simple <id> <text>"), arg(3, "send-simple <id> <text>"))
	case "send-e2e":
		sendE2E(ctx, arg(2, "send-e2e <id> <text>"), arg(3, "send-e2e <id> <text>"))
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func arg(i int, usage string) string {
	if len(os.Args) <= i {
		fatal("usage: gatewayhelper %s", usage)
	}
	return os.Args[i]
}

func options() []sealgate.Option {
	var opts []sealgate.Option
	if url := os.Getenv("SEALGATE_URL"); url != "" {
		opts = append(opts, sealgate.WithEndpoint(url))
	}
	return opts
}

func simpleClient() *sealgate.SimpleClient {
	client, err := sealgate.NewSimple(
		os.Getenv("SEALGATE_GATEWAY_ID"),
		os.Getenv("SEALGATE_GATEWAY_SECRET"),
		options()...,
	)
	if err != nil {
		fatal("create client: %v", err)
	}
	return client
}

func e2eClient() *sealgate.E2EClient {
	opts := append(options(), sealgate.WithPrivateKeyHex(os.Getenv("SEALGATE_PRIVATE_KEY")))
	client, err := sealgate.NewE2E(
		os.Getenv("SEALGATE_GATEWAY_ID"),
		os.Getenv("SEALGATE_GATEWAY_SECRET"),
		opts...,
	)
	if err != nil {
		fatal("create client: %v", err)
	}
	return client
}

func credits(ctx context.Context) {
	balance, err := simpleClient().LookupCredits(ctx)
	if err != nil {
		fatal("lookup credits: %v", err)
	}
	fmt.Println(balance)
}

func pubkey(ctx context.Context, id string) {
	key, err := simpleClient().LookupPubkey(ctx, id)
	if err != nil {
		fatal("lookup pubkey: %v", err)
	}
	fmt.Println(key.Hex())
}

func capabilities(ctx context.Context, id string) {
	caps, err := simpleClient().LookupCapabilities(ctx, id)
	if err != nil {
		fatal("lookup capabilities: %v", err)
	}
	fmt.Println(caps)
}

func lookupPhone(ctx context.Context, number string) {
	criterion, err := sealgate.CriterionPhoneHash(sealgate.HashPhone(number))
	if err != nil {
		fatal("build criterion: %v", err)
	}
	id, err := simpleClient().LookupID(ctx, criterion)
	if err != nil {
		fatal("lookup id: %v", err)
	}
	fmt.Println(id)
}

func lookupEmail(ctx context.Context, addr string) {
	criterion, err := sealgate.CriterionEmailHash(sealgate.HashEmail(addr))
	if err != nil {
		fatal("build criterion: %v", err)
	}
	id, err := simpleClient().LookupID(ctx, criterion)
	if err != nil {
		fatal("lookup id: %v", err)
	}
	fmt.Println(id)
}

func sendSimple(ctx context.Context, id, text string) {
	msgID, err := simpleClient().Send(ctx, sealgate.RecipientID(id), text)
	if err != nil {
		fatal("send: %v", err)
	}
	fmt.Println(msgID)
}

func sendE2E(ctx context.Context, id, text string) {
	client := e2eClient()

	key, err := client.LookupPubkey(ctx, id)
	if err != nil {
		fatal("lookup pubkey: %v", err)
	}
	msg, err := client.EncryptText(text, key)
	if err != nil {
		fatal("encrypt: %v", err)
	}
	msgID, err := client.Send(ctx, id, msg, true)
	if err != nil {
		fatal("send: %v", err)
	}
	fmt.Println(msgID)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
