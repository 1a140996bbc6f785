// parity_check replays the shared golden vectors through the local
// scoring engine and diffs the canonical output against what the vector
// file records. Sibling deployments run the same vectors; any mismatch
// here is a parity regression, not a test flake.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"persona-engine/internal/catalog"
	"persona-engine/internal/domain"
	"persona-engine/internal/engine"
	"persona-engine/internal/persona"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

type goldenFile struct {
	CatalogVersion string         `json:"catalog_version"`
	Vectors        []goldenVector `json:"vectors"`
}

type goldenVector struct {
	Name      string          `json:"name"`
	Responses map[string]int  `json:"responses"`
	Expected  json.RawMessage `json:"expected"`
	Checksum  string          `json:"checksum"`
}

func main() {
	vectorsPath := flag.String("vectors", "internal/engine/testdata/golden_vectors.json", "golden vector file")
	update := flag.Bool("update", false, "rewrite the vector file from the local engine output")
	flag.Parse()

	cat, err := catalog.LoadDefault()
	if err != nil {
		log.Fatal(err)
	}
	eng, err := engine.New(cat, persona.Default())
	if err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(*vectorsPath)
	if err != nil {
		log.Fatal(err)
	}
	var file goldenFile
	if err := json.Unmarshal(raw, &file); err != nil {
		log.Fatal(err)
	}
	if file.CatalogVersion != cat.Version {
		log.Fatalf("vector file is for catalog %q, engine has %q", file.CatalogVersion, cat.Version)
	}

	failures := 0
	for i := range file.Vectors {
		vec := &file.Vectors[i]
		fmt.Printf("%s[vector]%s %s\n", colorCyan, colorReset, vec.Name)

		result, err := eng.Score(domain.Responses(vec.Responses))
		if err != nil {
			log.Fatalf("score %s: %v", vec.Name, err)
		}
		summary := engine.Summarize(result)
		canonical, err := summary.CanonicalJSON()
		if err != nil {
			log.Fatalf("canonicalize %s: %v", vec.Name, err)
		}
		checksum, err := summary.Checksum()
		if err != nil {
			log.Fatalf("checksum %s: %v", vec.Name, err)
		}

		if *update {
			vec.Expected = json.RawMessage(canonical)
			vec.Checksum = checksum
			continue
		}

		expected := compactJSON(vec.Expected)
		if !bytes.Equal(canonical, expected) {
			failures++
			fmt.Printf("  %sFAIL%s output drift\n    want %s\n    got  %s\n", colorRed, colorReset, expected, canonical)
			continue
		}
		if checksum != vec.Checksum {
			failures++
			fmt.Printf("  %sFAIL%s checksum drift: want %s got %s\n", colorRed, colorReset, vec.Checksum, checksum)
			continue
		}
		fmt.Printf("  %sOK%s %s\n", colorGreen, colorReset, checksum)
	}

	if *update {
		out, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*vectorsPath, append(out, '\n'), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%supdated%s %s (%d vectors)\n", colorGreen, colorReset, *vectorsPath, len(file.Vectors))
		return
	}

	if failures > 0 {
		fmt.Printf("%s%d of %d vectors failed%s\n", colorRed, failures, len(file.Vectors), colorReset)
		os.Exit(1)
	}
	fmt.Printf("%sall %d vectors match%s\n", colorGreen, len(file.Vectors), colorReset)
}

func compactJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
