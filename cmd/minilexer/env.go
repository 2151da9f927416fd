package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "minilexer"

// applyEnvironment sets flags missing from command line using MINILEXER_<FLAG_NAME> environment variables,
// e.g. MINILEXER_GRAMMAR or MINILEXER_LOG_LEVEL.
func applyEnvironment(cmd *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(name) {
			return
		}
		if e := cmd.Flags().Set(f.Name, fmt.Sprint(v.Get(name))); e != nil {
			errs = append(errs, e.Error())
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
}
