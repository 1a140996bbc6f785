// integrity_check verifies that the scoring engine sources match the
// recorded checksum manifest. The deployed siblings carry equivalent
// checks so that a silent local edit to any one copy of the algorithm is
// caught before it ships.
package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func main() {
	dir := flag.String("dir", "internal/engine", "directory holding the engine sources")
	manifestPath := flag.String("manifest", "internal/engine/testdata/checksums.txt", "checksum manifest")
	update := flag.Bool("update", false, "rewrite the manifest from the current sources")
	flag.Parse()

	current, err := hashSources(*dir)
	if err != nil {
		log.Fatal(err)
	}

	if *update {
		var b strings.Builder
		for _, name := range sortedKeys(current) {
			fmt.Fprintf(&b, "%s  %s\n", current[name], name)
		}
		if err := os.WriteFile(*manifestPath, []byte(b.String()), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("updated %s (%d files)\n", *manifestPath, len(current))
		return
	}

	recorded, err := readManifest(*manifestPath)
	if err != nil {
		log.Fatal(err)
	}

	failures := 0
	for _, name := range sortedKeys(recorded) {
		got, ok := current[name]
		switch {
		case !ok:
			failures++
			fmt.Printf("MISSING %s\n", name)
		case got != recorded[name]:
			failures++
			fmt.Printf("DRIFT   %s\n", name)
		default:
			fmt.Printf("ok      %s\n", name)
		}
	}
	for _, name := range sortedKeys(current) {
		if _, ok := recorded[name]; !ok {
			failures++
			fmt.Printf("UNTRACKED %s\n", name)
		}
	}

	if failures > 0 {
		fmt.Printf("%d integrity failures\n", failures)
		os.Exit(1)
	}
	fmt.Printf("all %d engine sources match the manifest\n", len(recorded))
}

// hashSources returns hex sha256 per non-test Go file, keyed by base name.
func hashSources(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(raw)
		out[name] = hex.EncodeToString(sum[:])
	}
	return out, nil
}

func readManifest(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed manifest line: %q", line)
		}
		out[fields[1]] = fields[0]
	}
	return out, scanner.Err()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
