package main

import (
	_ "embed"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/storage"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	scoreLimit  = 20
)

//go:embed index.html
var pageSource string

var page = template.Must(template.New("index").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(pageSource))

type pageData struct {
	SSHHost string
	SSHPort string
	Scores  []storage.ScoreEntry
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids-web",
	})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}
	cfg, err := config.Load(config.GetEnv("ASTEROIDS_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	cfg.ApplyEnv()

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open scores", "err", err)
	}
	defer store.Close()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		scores, err := store.TopScores(scoreLimit)
		if err != nil {
			logger.Error("cannot load scores", "err", err)
			http.Error(w, "scores unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: sshHost, SSHPort: cfg.SSH.Port, Scores: scores}
		if err := page.Execute(w, data); err != nil {
			logger.Error("cannot render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
