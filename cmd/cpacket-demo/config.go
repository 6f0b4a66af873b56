package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/guuzaa/cpacket"
)

// manifest is the TOML shape of a packet build list.
//
//	[[packet]]
//	name = "values"
//	values = [1, 2, 3]
//
//	[[packet]]
//	name = "repeated"
//	repeat = { value = 42, count = 5 }
type manifest struct {
	Packet []packetSpec `toml:"packet"`
}

type packetSpec struct {
	Name   string      `toml:"name"`
	Values []int32     `toml:"values"`
	Repeat *repeatSpec `toml:"repeat"`
}

type repeatSpec struct {
	Value int32  `toml:"value"`
	Count uint16 `toml:"count"`
}

func loadManifest(path string) ([]packetSpec, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("load packet manifest: %w", err)
	}
	for i, spec := range m.Packet {
		if strings.TrimSpace(spec.Name) == "" {
			return nil, fmt.Errorf("packet manifest: entry %d has no name", i)
		}
		if spec.Values != nil && spec.Repeat != nil {
			return nil, fmt.Errorf("packet manifest: %q sets both values and repeat", spec.Name)
		}
	}
	return m.Packet, nil
}

func buildPacket(spec packetSpec) (*cpacket.Packet, error) {
	if spec.Repeat != nil {
		p, err := cpacket.New(spec.Repeat.Count)
		if err != nil {
			return nil, fmt.Errorf("build %q: %w", spec.Name, err)
		}
		data := p.Data()
		for i := range data {
			data[i] = spec.Repeat.Value
		}
		return p, nil
	}
	p, err := cpacket.FromSlice(spec.Values)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", spec.Name, err)
	}
	return p, nil
}
