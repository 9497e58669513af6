// Package testutil provides testing utilities for phonogo.
//
// This package is intended for use in tests only. It provides a
// map-backed phoneme.Parser over a small fixture vocabulary and a seeded
// random generator for building synthetic inventories.
//
// # Fixture Parser
//
//	p := testutil.NewParser()
//	f, _ := p.Parse("tʰ") // consonant plosive alveolar voiceless + aspirated
//
// # Random Inventories
//
//	rng := testutil.NewRNG(seed)
//	glyphs := rng.Inventory(12) // 12 distinct tabulatable glyphs
package testutil
