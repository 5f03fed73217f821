package installer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bootstrap-machine/internal/logger"
)

// aliasFileName is the alias file under the user's home directory, sourced
// by the shell rc file the dotfile tree ships.
const aliasFileName = ".aliases"

// defaultAliases is the fixed alias set every provisioned machine gets.
var defaultAliases = []struct {
	Name  string
	Value string
}{
	{"g", "git"},
	{"gs", "git status"},
	{"gl", "git log --oneline --graph --decorate"},
	{"dc", "docker-compose"},
	{"dps", "docker ps"},
	{"ll", "ls -alh"},
}

// InstallAliases appends the fixed alias set to the user's alias file,
// skipping any alias whose key is already defined there. Existing
// definitions are never touched, so user edits survive re-runs.
type InstallAliases struct{}

func (*InstallAliases) Name() string { return "shell-aliases" }

func (*InstallAliases) Run(ctx *Context) error {
	path := filepath.Join(ctx.Home, aliasFileName)

	// Pre-scan the file for already defined alias keys.
	existing := make(map[string]bool)
	if f, err := ctx.Fs.Open(path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if key, ok := aliasKey(scanner.Text()); ok {
				existing[key] = true
			}
		}
		_ = f.Close()
	}

	file, err := ctx.Fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to open %s for appending: %w", path, err)
	}
	defer file.Close()

	for _, a := range defaultAliases {
		if existing[a.Name] {
			logger.Debug("[DEBUG] Alias %s already defined. Skipping.\n", a.Name)
			continue
		}
		line := fmt.Sprintf("alias %s=\"%s\"\n", a.Name, a.Value)
		if _, err := file.WriteString(line); err != nil {
			return fmt.Errorf("failed to write alias %q: %w", a.Name, err)
		}
		logger.Info("[INFO] Added alias: %s\n", strings.TrimSpace(line))
		existing[a.Name] = true
	}

	return nil
}

// aliasKey extracts the alias name from a line shaped like `alias key=...`.
func aliasKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "alias ") {
		return "", false
	}
	rest := strings.TrimPrefix(trimmed, "alias ")
	key, _, found := strings.Cut(rest, "=")
	if !found || key == "" {
		return "", false
	}
	return strings.TrimSpace(key), true
}
