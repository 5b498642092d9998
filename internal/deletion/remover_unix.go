//go:build unix

package deletion

import (
	"os"
	"os/user"

	"dirhop/internal/logging"
)

var adminGroups = []string{"sudo", "admin", "wheel", "root"}

// Platform returns the sudo-based remover. A process already running as
// root gets NoElevation since sudo cannot add anything.
func Platform() PrivilegedRemover {
	if IsElevated() {
		logging.Debug("running as root, privileged stages disabled")
		return NoElevation{}
	}
	return NewSudoRemover(ExecRunner{})
}

// CanElevate reports whether the current user is root or belongs to one of
// the groups sudo is normally configured for.
func CanElevate() bool {
	u, err := user.Current()
	if err != nil {
		logging.Warn("looking up current user", "err", err)
		return false
	}
	if u.Uid == "0" {
		return true
	}

	gids, err := u.GroupIds()
	if err != nil {
		logging.Warn("looking up groups", "user", u.Username, "err", err)
		return false
	}
	for _, gid := range gids {
		g, err := user.LookupGroupId(gid)
		if err != nil {
			continue
		}
		for _, name := range adminGroups {
			if g.Name == name {
				return true
			}
		}
	}
	return false
}

// IsElevated reports whether the process already runs as root
func IsElevated() bool {
	return os.Geteuid() == 0
}
