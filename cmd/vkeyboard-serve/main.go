package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		addr    string
		dir     string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:          "vkeyboard-serve",
		Short:        "Serve the keyboard page and its wasm binary for development",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			logger.Info("serving", "addr", addr, "dir", dir, "no_cache", noCache)
			return http.ListenAndServe(addr, newHandler(dir, noCache))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to serve")
	cmd.Flags().BoolVar(&noCache, "no-cache", true, "send Cache-Control: no-cache")

	return cmd
}

func newHandler(dir string, noCache bool) http.Handler {
	return &staticHandler{
		Handler: http.FileServer(http.Dir(dir)),
		noCache: noCache,
	}
}

type staticHandler struct {
	http.Handler
	noCache bool
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.noCache {
		w.Header().Set("Cache-Control", "no-cache")
	}
	if filepath.Ext(r.URL.Path) == ".wasm" {
		w.Header().Set("Content-Type", "application/wasm")
	}
	h.Handler.ServeHTTP(w, r)
}
