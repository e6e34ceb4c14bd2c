package ignore

import (
	"path/filepath"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/types"
)

// Materialize writes spec to targetDir/fileName, replacing any existing
// file, and returns the written path.
func Materialize(fsys types.FS, spec *Spec, targetDir, fileName string) (string, error) {
	logger := logging.GetLogger("ignore.materialize")

	info, err := fsys.Stat(targetDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathNotDir, "Not a directory: %s", targetDir).
			WithDetail("path", targetDir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrPathNotDir, "Not a directory: %s", targetDir).
			WithDetail("path", targetDir)
	}

	if fileName == "" {
		fileName = DefaultFileName
	}
	path := filepath.Join(targetDir, fileName)
	data := spec.Render()

	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write ignore file: %s", path).
			WithDetail("path", path)
	}

	logger.Info().
		Str("path", path).
		Int("lines", len(spec.Lines())).
		Msg("Ignore file written")
	return path, nil
}
