// Package which locates external executables on the search path.
package which

import (
	"os/exec"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
)

// Locate returns the absolute path of the named executable
func Locate(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrToolNotFound, "Error finding the '%s' command", name).
			WithDetail("command", name)
	}
	return path, nil
}
