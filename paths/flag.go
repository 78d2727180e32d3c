package paths

import (
	"flag"
	"path/filepath"
	"strings"
)

type searchPathFlag struct{}

func (searchPathFlag) String() string {
	return strings.Join(SearchPath, string(filepath.ListSeparator))
}

func (searchPathFlag) Set(s string) error {
	SearchPath = filepath.SplitList(s)
	return nil
}

// SetupSearchPathFlag registers a flag with the passed name which sets
// SearchPath from a list of directories separated by the OS path list
// separator.
func SetupSearchPathFlag(flagName string) {
	flag.Var(searchPathFlag{}, flagName, "Directories to search for relative input files, separated by "+string(filepath.ListSeparator))
}
