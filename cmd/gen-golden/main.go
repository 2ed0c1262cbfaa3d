package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/chatfmt"
)

var defaultFormats = []string{"escape", "bold", "h2", "list", "numbered-list", "code-block"}

func main() {
	root := "testdata"
	var paths []string
	formatsByBase := map[string][]goldenKey{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".txt") {
			paths = append(paths, path)
			return nil
		}
		if strings.HasSuffix(path, ".golden") {
			if base, key, ok := parseGoldenName(root, path); ok {
				formatsByBase[base] = append(formatsByBase[base], key)
			}
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no text files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		if err := chatfmt.ValidateInput(src); err != nil {
			fatalf("validate %s: %v", path, err)
		}
		base := goldenBase(root, path)
		keys := formatsByBase[base]
		if len(keys) == 0 {
			keys = defaultKeys()
		}
		for _, key := range keys {
			policy, ok := chatfmt.PolicyByName(key.policy)
			if !ok {
				fatalf("%s: unknown policy %q", path, key.policy)
			}
			fn, ok := chatfmt.New(chatfmt.WithPolicy(policy)).TextFormat(key.format)
			if !ok {
				fatalf("%s: unknown format %q", path, key.format)
			}
			goldenPath := filepath.Join(root, fmt.Sprintf("%s.%s.%s.golden", base, key.policy, key.format))
			if err := os.WriteFile(goldenPath, []byte(fn(string(src))), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

type goldenKey struct {
	policy string
	format string
}

func defaultKeys() []goldenKey {
	var keys []goldenKey
	for _, policy := range chatfmt.AvailablePolicies() {
		for _, format := range defaultFormats {
			keys = append(keys, goldenKey{policy: policy, format: format})
		}
	}
	return keys
}

func goldenBase(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	name := strings.TrimSuffix(rel, ".txt")
	return strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// parseGoldenName splits testdata/<base>.<policy>.<format>.golden.
func parseGoldenName(root, goldenPath string) (string, goldenKey, bool) {
	rel, err := filepath.Rel(root, goldenPath)
	if err != nil {
		return "", goldenKey{}, false
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasSuffix(rel, ".golden") {
		return "", goldenKey{}, false
	}
	parts := strings.Split(strings.TrimSuffix(rel, ".golden"), ".")
	if len(parts) < 3 {
		return "", goldenKey{}, false
	}
	n := len(parts)
	base := strings.Join(parts[:n-2], ".")
	return base, goldenKey{policy: parts[n-2], format: parts[n-1]}, true
}
