package main

import (
	"github.com/spf13/pflag"

	"github.com/openhours/openhours/internal/envcfg"
)

// intFlagOrEnv resolves an integer setting: an explicitly set flag wins,
// then the environment variable, then the flag's default.
func intFlagOrEnv(fs *pflag.FlagSet, name, envKey string) (int, error) {
	v, err := fs.GetInt(name)
	if err != nil {
		return 0, err
	}
	if fs.Changed(name) {
		return v, nil
	}
	return envcfg.Int(envKey, v)
}
