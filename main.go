package main

import (
	"context"
	"flag"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/planets/config"
	"github.com/zucenko/planets/connectfour"
	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/server"
)

func initLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	configPath := flag.String("config", "config.yml", "config file; empty reads the environment only")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	initLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		log.Fatalf("planets: %v", err)
	}
}

func run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	loader := graphics.Loader{Root: cfg.Assets.Root}
	animations, err := graphics.LoadLibrary(loader, cfg.Assets.Shader, cfg.Defs())
	if err != nil {
		return err
	}
	defer animations.Dispose()

	var panel *graphics.NinePatch
	if cfg.Assets.Panel != "" {
		img, err := loader.Image(cfg.Assets.Panel)
		if err != nil {
			return err
		}
		defer img.Deallocate()
		panel = graphics.NewNinePatch(img, img.Bounds().Dx()/3, 1)
	}

	face, err := graphics.NewFace(cfg.Assets.FontSize)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := connectfour.Options{
		DropSeconds: float32(cfg.Game.DropSeconds),
		Screen:      image.Pt(cfg.Window.Width, cfg.Window.Height),
		Rand:        rand.New(rand.NewSource(seed(cfg.Game.Seed))),
	}
	if cfg.Spectator.Addr != "" {
		hub := server.NewHub()
		opts.Publisher = hub
		go func() {
			if err := server.NewServer(hub).ListenAndServe(ctx, cfg.Spectator.Addr); err != nil {
				log.Errorf("spectator server: %v", err)
			}
		}()
	}

	board, err := connectfour.New(animations, opts)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
		"tps":    cfg.Window.TPS,
	}).Info("starting")
	game := NewGame(board, &EbitenInput{}, face, panel, cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	return ebiten.RunGame(game)
}

func seed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
