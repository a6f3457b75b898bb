package main

import (
	"bytes"
	"testing"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/util"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestConfigCmd_Run(t *testing.T) {
	defer util.SetEnv("BJ_CONFIG_FILE", "testdata/missing.yaml")()

	a := assert.New(t)
	var buf bytes.Buffer
	cmd := ConfigCmd{Defaults: true, out: &buf}
	a.NoError(cmd.Run())
	a.Contains(buf.String(), "standOnSoft17: true")

	var cfg config.Config
	a.NoError(yaml.Unmarshal(buf.Bytes(), &cfg))
	a.Equal(config.DefaultConfig(), cfg)
}
