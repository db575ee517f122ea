package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akamensky/argparse"
	"github.com/dmitrijs2005/peerlink/internal/client/config"
	"github.com/dmitrijs2005/peerlink/internal/netx"
	"github.com/gookit/color"
)

const title = "peerlink client: share a file once through a peerlink server"

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	args := argparse.NewParser("peerlink", title)

	cfgPath := args.String("c", "config", &argparse.Options{Required: false, Help: "JSON config file"})
	server := args.String("s", "server", &argparse.Options{Required: false, Help: "Server base URL (overrides config)"})

	upload := args.NewCommand("upload", "Upload a file and print its download token")
	file := upload.String("f", "file", &argparse.Options{Required: true, Help: "File path"})

	download := args.NewCommand("download", "Download a file by token")
	token := download.String("t", "token", &argparse.Options{Required: true, Help: "Download token"})
	out := download.String("o", "out", &argparse.Options{Required: false, Help: "Output directory (overrides config)"})

	if err := args.Parse(argv); err != nil {
		fmt.Print(args.Usage(err))
		return 1
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		color.Red.Println(err.Error())
		return 1
	}
	if *server != "" {
		cfg.ServerURL = *server
	}
	if *out != "" {
		cfg.DownloadDir = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: cfg.Timeout}

	switch {
	case upload.Happened():
		tok, err := netx.UploadFile(ctx, client, cfg.ServerURL, *file)
		if err != nil {
			color.Red.Println("upload failed:", err.Error())
			return 1
		}
		color.Green.Println("Uploaded. Share this token:")
		fmt.Println(tok)

	case download.Happened():
		path, err := netx.DownloadFile(ctx, client, cfg.ServerURL, *token, cfg.DownloadDir)
		if err != nil {
			color.Red.Println("download failed:", err.Error())
			return 1
		}
		color.Green.Printf("Saved %s\n", path)
	}

	return 0
}
