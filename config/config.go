package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/zucenko/planets/graphics"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel   string               `yaml:"log-level" env:"CF_LOG_LEVEL" env-default:"info"`
	Window     Window               `yaml:"window"`
	Assets     Assets               `yaml:"assets"`
	Game       Game                 `yaml:"game"`
	Spectator  Spectator            `yaml:"spectator"`
	Animations map[string]Animation `yaml:"animations"`
}

type Window struct {
	Width  int    `yaml:"width" env:"CF_WINDOW_WIDTH" env-default:"640"`
	Height int    `yaml:"height" env:"CF_WINDOW_HEIGHT" env-default:"480"`
	Title  string `yaml:"title" env-default:"Connect Four with planets"`
	TPS    int    `yaml:"tps" env-default:"60"`
}

type Assets struct {
	Root     string  `yaml:"root" env:"CF_ASSETS_ROOT" env-default:"data"`
	Shader   string  `yaml:"shader"`
	Panel    string  `yaml:"panel"`
	FontSize float64 `yaml:"font-size" env-default:"20"`
}

type Game struct {
	DropSeconds float64 `yaml:"drop-seconds" env-default:"0.6"`
	Seed        int64   `yaml:"seed"`
}

type Spectator struct {
	Addr string `yaml:"addr" env:"CF_SPECTATOR_ADDR"`
}

type Animation struct {
	Texture     string  `yaml:"texture"`
	FrameWidth  int     `yaml:"frame-width"`
	FrameHeight int     `yaml:"frame-height"`
	Frames      int     `yaml:"frames"`
	Period      float64 `yaml:"period"`
}

// DefaultAnimations are the sheets shipped under data/textures.
func DefaultAnimations() map[string]Animation {
	return map[string]Animation{
		graphics.BluePlanet: {Texture: "textures/planet.png", FrameWidth: 64, FrameHeight: 64, Frames: 16, Period: 0.1},
		graphics.RedPlanet:  {Texture: "textures/red_planet.png", FrameWidth: 64, FrameHeight: 64, Frames: 16, Period: 0.1},
		graphics.Lightning:  {Texture: "textures/lightning.png", FrameWidth: 86, FrameHeight: 18, Frames: 8, Period: 0.1},
		graphics.AddButton:  {Texture: "textures/add_button.png", FrameWidth: 64, FrameHeight: 64, Frames: 16, Period: 0.04},
		graphics.Messages:   {Texture: "textures/messages.png", FrameWidth: 256, FrameHeight: 32, Frames: 3, Period: 8},
	}
}

// Load reads path, then the environment. Animations missing from the file
// fall back to DefaultAnimations.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config %q: %w", path, err)
	}

	if config.Animations == nil {
		config.Animations = map[string]Animation{}
	}
	for name, a := range DefaultAnimations() {
		if _, ok := config.Animations[name]; !ok {
			config.Animations[name] = a
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Game.DropSeconds <= 0:
		return fmt.Errorf("%w: drop-seconds %v", ErrInvalid, c.Game.DropSeconds)
	}
	for name, a := range c.Animations {
		if a.Texture == "" {
			return fmt.Errorf("%w: animation %s has no texture", ErrInvalid, name)
		}
	}
	return nil
}

// Defs converts the animation section for graphics.LoadLibrary.
func (c *Config) Defs() map[string]graphics.Def {
	defs := make(map[string]graphics.Def, len(c.Animations))
	for name, a := range c.Animations {
		defs[name] = graphics.Def{
			Texture:     a.Texture,
			FrameWidth:  a.FrameWidth,
			FrameHeight: a.FrameHeight,
			Frames:      a.Frames,
			Period:      a.Period,
		}
	}
	return defs
}
