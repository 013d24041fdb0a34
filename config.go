package lagrange

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _lagrangeconfig{}
)

// _lagrangeconfig is a "hidden" struct, just use `lagrangeConfig`
type _lagrangeconfig struct {
	VSOP87    bool
	VSOP87Dir string
	outputDir string
}

// lagrangeConfig returns the Lagrange-Study configuration. The conf.toml is
// looked up in the directory named by LAGRANGE_CONFIG; without it every map
// still renders with catalogued angles into the working directory.
func lagrangeConfig() _lagrangeconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("LAGRANGE_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		config = _lagrangeconfig{outputDir: "."}
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	vsop87Enabled := viper.GetBool("VSOP87.enabled")
	vsop87Dir := viper.GetString("VSOP87.directory")
	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	cfgLoaded = true
	config = _lagrangeconfig{VSOP87: vsop87Enabled, VSOP87Dir: vsop87Dir, outputDir: outputDir}
	return config
}

// OutputPath returns the full path for a generated map file, honoring the
// configured output directory.
func OutputPath(filename string) string {
	return filepath.Join(lagrangeConfig().outputDir, filename)
}
