package main

// @title           Postino Blog API
// @version         0.1.0
// @description     Postino is a blog daemon serving posts, tags, images, statistics, an RSS feed and a websocket event stream.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

import (
	"os"

	"github.com/AshkanSharifii/blog/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
