package project

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/goplus/cfgen/internal/compose"
)

// DescriptorFile is the file a project directory must contain.
const DescriptorFile = "CMakeLists.txt"

// ErrMissingDescriptor is matched by every *MissingDescriptorError.
var ErrMissingDescriptor = errors.New("missing project descriptor")

// MissingDescriptorError reports a directory without CMakeLists.txt.
type MissingDescriptorError struct {
	Dir string
}

func (e *MissingDescriptorError) Error() string {
	return fmt.Sprintf("couldn't find %s in %s; run cfgen from a folder with %s", DescriptorFile, e.Dir, DescriptorFile)
}

func (e *MissingDescriptorError) Is(target error) bool {
	return target == ErrMissingDescriptor
}

// -----------------------------------------------------------------------------

// Project is a CMake project on disk.
type Project struct {
	Dir   string
	DirFS fs.FS
}

// Open returns the project rooted at dir. dir must contain CMakeLists.txt.
func Open(dir string) (*Project, error) {
	p := &Project{Dir: dir, DirFS: os.DirFS(dir)}
	if _, err := fs.Stat(p.DirFS, DescriptorFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingDescriptorError{Dir: dir}
		}
		return nil, err
	}
	return p, nil
}

// ReadFile reads the content of a file in the project.
func (p *Project) ReadFile(path string) ([]byte, error) {
	file, err := p.DirFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

var projNameRE = regexp.MustCompile(`^set\(PROJ_NAME[" ]*([a-zA-Z0-9]*)[" ]*\)$`)

// Name returns the value of the last set(PROJ_NAME ...) line in
// CMakeLists.txt.
func (p *Project) Name() (string, error) {
	data, err := p.ReadFile(DescriptorFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingDescriptorError{Dir: p.Dir}
		}
		return "", err
	}
	if name := ParseName(data); name != "" {
		return name, nil
	}
	return "", &compose.MissingProjectNameError{Source: DescriptorFile}
}

// ParseName extracts PROJ_NAME from CMakeLists.txt content, or returns "".
// A later set() overrides an earlier one, as it does in CMake.
func ParseName(data []byte) string {
	name := ""
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if m := projNameRE.FindSubmatch(bytes.TrimRight(sc.Bytes(), "\r")); m != nil {
			name = string(m[1])
		}
	}
	return name
}

// -----------------------------------------------------------------------------
