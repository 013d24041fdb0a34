package lagrange

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	os.Unsetenv("LAGRANGE_CONFIG")
	cfgLoaded = false
	conf := lagrangeConfig()
	if conf.VSOP87 {
		t.Fatal("VSOP87 enabled without a configuration")
	}
	if conf.outputDir != "." {
		t.Fatalf("default output dir is %s", conf.outputDir)
	}
	if OutputPath("map.png") != "map.png" {
		t.Fatalf("default output path is %s", OutputPath("map.png"))
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := []byte("[general]\noutput_path = \"/tmp/maps\"\n\n[VSOP87]\nenabled = false\n")
	if err := os.WriteFile(filepath.Join(dir, "conf.toml"), conf, 0o644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("LAGRANGE_CONFIG", dir)
	defer os.Unsetenv("LAGRANGE_CONFIG")
	cfgLoaded = false
	defer func() { cfgLoaded = false }()
	c := lagrangeConfig()
	if c.outputDir != "/tmp/maps" {
		t.Fatalf("output dir is %s", c.outputDir)
	}
	if got := OutputPath("map.png"); got != filepath.Join("/tmp/maps", "map.png") {
		t.Fatalf("output path is %s", got)
	}
}
