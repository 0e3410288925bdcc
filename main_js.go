package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall/js"
	"time"

	"github.com/seqsense/vkeyboard/dom"
	"github.com/seqsense/vkeyboard/keyboard"
)

const (
	configAttribute = "data-keyboard-config"
	debugAttribute  = "data-keyboard-debug"
	logElementID    = "log"
	readyEvent      = "vkeyboardready"

	configTimeout = 10 * time.Second
)

func main() {
	doc := dom.Global()

	ready := make(chan struct{})
	doc.OnDOMContentLoaded(func() {
		close(ready)
	})
	<-ready

	var out io.Writer = os.Stderr
	if logDiv, ok := doc.GetElementByID(logElementID); ok {
		out = io.MultiWriter(os.Stderr, logWriter{el: logDiv})
	}
	_, debug := doc.Body().Attribute(debugAttribute)
	logger := newLogger(out, debug)

	ctx, cancel := context.WithTimeout(context.Background(), configTimeout)
	cfg, err := loadConfig(ctx, doc.Body())
	cancel()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	kb := keyboard.New(domDocument{doc: doc},
		keyboard.WithConfig(cfg),
		keyboard.WithLogger(logger),
	)
	if err := kb.Initialize(); err != nil {
		logger.Error("failed to initialize keyboard", "error", err)
		return
	}

	con := &console{kb: kb}
	js.Global().Set("vkeyboard",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			res, err := con.Run(args[0].String())
			if err != nil {
				logger.Debug("console command failed", "line", args[0].String(), "error", err)
				return errorToJS(err)
			}
			return res
		}),
	)

	doc.DispatchEvent(dom.NewEvent(readyEvent))
	logger.Debug("waiting for activations")

	select {}
}

func loadConfig(ctx context.Context, body dom.Element) (keyboard.Config, error) {
	path, ok := body.Attribute(configAttribute)
	if !ok || path == "" {
		return keyboard.DefaultConfig(), nil
	}
	b, err := fetchBytes(ctx, path)
	if err != nil {
		return keyboard.Config{}, err
	}
	cfg, err := keyboard.ParseConfig(b)
	if err != nil {
		return keyboard.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
