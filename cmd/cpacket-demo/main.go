// cpacket-demo builds a handful of packets through the native library
// and logs what the length reader sees for each one.
//
// With no flags it runs a built-in set of packets. Pass -manifest to
// build packets declared in a TOML file instead:
//
//	go run ./cmd/cpacket-demo
//	go run ./cmd/cpacket-demo -manifest cmd/cpacket-demo/ex.packets.toml
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	manifestPath := flag.String("manifest", "", "TOML packet manifest to build instead of the built-in set")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "cpacket-demo").Logger()

	specs := builtinSpecs()
	if *manifestPath != "" {
		loaded, err := loadManifest(*manifestPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("load manifest")
		}
		specs = loaded
	}

	for _, spec := range specs {
		if err := runSpec(logger, spec); err != nil {
			logger.Fatal().Err(err).Str("packet", spec.Name).Msg("build packet")
		}
	}
}

func runSpec(logger zerolog.Logger, spec packetSpec) error {
	p, err := buildPacket(spec)
	if err != nil {
		return err
	}
	defer p.Close()

	logger.Info().
		Str("packet", spec.Name).
		Uint16("length", p.Len()).
		Bool("empty", p.IsEmpty()).
		Str("contents", p.String()).
		Msg("packet built")

	for i, v := range p.All() {
		logger.Debug().Str("packet", spec.Name).Int("index", i).Int32("value", v).Msg("element")
	}
	return nil
}

// builtinSpecs mirrors the packets the manifest example declares, so
// the demo is useful with no arguments.
func builtinSpecs() []packetSpec {
	return []packetSpec{
		{Name: "empty", Values: []int32{}},
		{Name: "values", Values: []int32{1, 2, 3, 4, 5}},
		{Name: "repeated", Repeat: &repeatSpec{Value: 42, Count: 5}},
		{Name: "single", Values: []int32{123}},
		{Name: "large", Repeat: &repeatSpec{Value: 0, Count: 10}},
	}
}
