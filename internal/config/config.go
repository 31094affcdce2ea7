package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

const envPrefix = "PHOTO_EDITOR_"

type Config struct {
	LogLevel       string
	LogFormat      string
	Engine         string
	BlurRadius     float64
	ViewportWidth  int
	ViewportHeight int
	JPEGQuality    int
	NativeDialogs  bool
	Background     color.Color
}

func Default() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "console",
		Engine:         "imaging",
		BlurRadius:     10,
		ViewportWidth:  400,
		ViewportHeight: 300,
		JPEGQuality:    95,
		NativeDialogs:  false,
		Background:     color.NRGBA{R: 252, G: 252, B: 252, A: 255},
	}
}

// Load reads an optional .env file from the working directory and then the
// process environment. Malformed values are reported, not silently replaced.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := Default()
	var errs []error

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.Engine = strings.ToLower(getEnv("ENGINE", cfg.Engine))

	if v, err := getEnvAsFloat("BLUR_RADIUS", cfg.BlurRadius); err != nil {
		errs = append(errs, err)
	} else if v <= 0 {
		errs = append(errs, fmt.Errorf("%sBLUR_RADIUS must be positive, got %v", envPrefix, v))
	} else {
		cfg.BlurRadius = v
	}

	if w, h, err := getEnvAsSize("VIEWPORT", cfg.ViewportWidth, cfg.ViewportHeight); err != nil {
		errs = append(errs, err)
	} else {
		cfg.ViewportWidth, cfg.ViewportHeight = w, h
	}

	if q, err := getEnvAsInt("JPEG_QUALITY", cfg.JPEGQuality); err != nil {
		errs = append(errs, err)
	} else if q < 1 || q > 100 {
		errs = append(errs, fmt.Errorf("%sJPEG_QUALITY must be in 1..100, got %d", envPrefix, q))
	} else {
		cfg.JPEGQuality = q
	}

	if b, err := getEnvAsBool("NATIVE_DIALOGS", cfg.NativeDialogs); err != nil {
		errs = append(errs, err)
	} else {
		cfg.NativeDialogs = b
	}

	if c, err := getEnvAsColor("BACKGROUND", cfg.Background); err != nil {
		errs = append(errs, err)
	} else {
		cfg.Background = c
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return intValue, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return floatValue, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return boolValue, nil
}

// getEnvAsSize parses "WIDTHxHEIGHT".
func getEnvAsSize(key string, defaultW, defaultH int) (int, int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultW, defaultH, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return defaultW, defaultH, fmt.Errorf("%s%s: expected WIDTHxHEIGHT, got %q", envPrefix, key, value)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return defaultW, defaultH, fmt.Errorf("%s%s: invalid size %q", envPrefix, key, value)
	}
	return w, h, nil
}

func getEnvAsColor(key string, defaultValue color.Color) (color.Color, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
