// crimson-depths-server serves the game over SSH, one independent run per
// connection. Build:
//
//	go build -o crimson-depths-server ./cmd/server
//
// Usage:
//
//	./crimson-depths-server [--port 2222] [--key server_host_key]
//
// Then connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"crimson-depths/internal/config"
	"crimson-depths/internal/game"
	"crimson-depths/internal/logger"
	"crimson-depths/internal/rng"
	"crimson-depths/internal/sshtty"
	"crimson-depths/internal/tui"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds player names taken from the SSH user.
const maxNameBytes = 16

// allowedTerms lists the TERM values passed through to terminfo lookup.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-color":           true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.SSHHostKey, "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat, nil); err != nil {
		logger.Log.WithError(err).Warn("using default log level")
	}
	log := logger.For("server")

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     func(s gossh.Session) { handleSession(cfg, s) },
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.WithField("port", *port).Info("listening")
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one game for the connection and blocks until it ends.
func handleSession(cfg config.Config, s gossh.Session) {
	log := logger.For("server").WithFields(logrus.Fields{
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	tty := sshtty.New(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = rng.NewSeed()
	}
	e, err := game.New(cfg, seed)
	if err != nil {
		log.WithError(err).Error("new game")
		return
	}
	log.WithField("seed", seed).Info("session started")

	tui.Run(screen, e)

	run := e.RunLog()
	log.WithFields(logrus.Fields{
		"turns": run.Turns,
		"kills": run.Kills,
		"depth": run.DeepestLevel,
		"state": e.State().String(),
	}).Info("session ended")
}

// sessionTerm picks the terminal type from the pty request or the
// environment, keeping only whitelisted values.
func sessionTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if !allowedTerms[term] {
		return "xterm-256color"
	}
	return term
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	log := logger.For("server")
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "crimson-depths server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.WithError(err).Warn("host key not persisted")
	}
	return signer, nil
}
