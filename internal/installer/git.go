package installer

import (
	"fmt"

	"bootstrap-machine/internal/logger"
)

// ConfigureVersionControl applies the developer's git identity, credential
// caching, and a signed-commit alias. Setting the same value twice is a
// no-op in git, so the whole action is naturally idempotent.
type ConfigureVersionControl struct{}

func (*ConfigureVersionControl) Name() string { return "git-config" }

func (*ConfigureVersionControl) Run(ctx *Context) error {
	set := func(key, value string) error {
		out, err := ctx.Run.Run("git", "config", "--global", key, value)
		if err != nil {
			return fmt.Errorf("git config %s failed: %v\nOutput: %s", key, err, out)
		}
		logger.Info("[INFO] git %s = %s\n", key, value)
		return nil
	}

	// Identity comes from the environment description; without it the rest
	// of the action still applies.
	name, haveName := ctx.Config.Lookup("FULL_NAME")
	email, haveEmail := ctx.Config.Lookup("PERSONAL_EMAIL")
	var identity error
	if !haveName || !haveEmail {
		identity = Warningf("FULL_NAME/PERSONAL_EMAIL not configured, git identity left unset")
	} else {
		if err := set("user.name", name); err != nil {
			return err
		}
		if err := set("user.email", email); err != nil {
			return err
		}
	}

	timeout := ctx.Config.GetDefault("GIT_CACHE_TIMEOUT", "3600")
	if err := set("credential.helper", "cache --timeout="+timeout); err != nil {
		return err
	}

	// cs = signed commit, the only alias git itself needs; the rest live in
	// the shell alias file.
	if err := set("alias.cs", "commit -S"); err != nil {
		return err
	}

	return identity
}
