package config

import (
	"os/exec"
	"strings"
)

// GitIdentity reads user.name and user.email from git config. Used to
// suggest values when prompting for author-like template variables.
// Best-effort: any failure returns empty strings.
func GitIdentity() (name, email string) {
	name = gitConfigValue("user.name")
	email = gitConfigValue("user.email")
	return name, email
}

func gitConfigValue(key string) string {
	out, err := exec.Command("git", "config", "--get", key).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
