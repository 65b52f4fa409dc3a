package runtime

import (
	"github.com/spf13/pflag"
)

type Flags struct {
	ConfigFile string
	EnvFile    string
}

// Bind registers the runtime flags on a command's flag set.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.ConfigFile, "config", "c", "", "path to a TOML config file")
	fs.StringVar(&f.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}
