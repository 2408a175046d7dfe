package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/ianhowey12/Chess-Engine/internal/search"
	"github.com/ianhowey12/Chess-Engine/shell"
)

var flgVerify bool

func main() {
	flag.BoolVar(&flgVerify, "verify", false, "cross-check the move generator on the starting position and exit")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	if flgVerify {
		var pos = search.StartingPosition()
		if err := shell.VerifyPosition(&pos); err != nil {
			logger.Fatal(err)
		}
		logger.Println("verify ok")
		return
	}

	logger.Println("chessengine",
		"RuntimeVersion", runtime.Version(),
		"NumCPU", runtime.NumCPU(),
	)

	var engine = search.NewEngine()
	defer engine.Close()
	shell.NewProtocol(engine, logger).Run(os.Stdin, os.Stdout)
}
