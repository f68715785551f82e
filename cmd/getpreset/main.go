package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/islandgen/internal/config"
	"github.com/OCharnyshevich/islandgen/internal/world/gen"
)

func main() {
	var (
		src = flag.String("src", "", "go-getter source of a preset directory, e.g. git::https://example.com/presets.git//islands")
		out = flag.String("o", "./presets", "output dir path")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("preset source required")
	}
	if *out == "" {
		log.Fatal("output dir path required")
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	log.Default().Printf("start downloading presets %s", *src)
	client := &get.Client{
		Src:  *src,
		Dst:  *out,
		Pwd:  wd,
		Mode: get.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		log.Fatal(err)
	}

	paths, err := filepath.Glob(filepath.Join(*out, "*.json"))
	if err != nil {
		log.Fatal(err)
	}

	var bad int
	for _, p := range paths {
		if err := checkPreset(p); err != nil {
			log.Default().Printf("invalid preset %s: %v", p, err)
			bad++
		}
	}
	log.Default().Printf("done downloading presets %s: %d presets, %d invalid", *out, len(paths), bad)
	if bad > 0 {
		os.Exit(1)
	}
}

func checkPreset(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := gen.Tiles(cfg.Width, cfg.Height, cfg.Threads); err != nil {
		return fmt.Errorf("tiling: %w", err)
	}
	return nil
}
