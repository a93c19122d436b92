// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads processor and CLI defaults from an optional YAML
// file, environment variables (JSONLD_-prefixed), and command-line flags,
// in that increasing order of precedence, via Viper.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vantablack-ld/jsonld/jsonld"
)

// Defaults holds the subset of jsonld.Options and ambient settings a user
// can override through a config file, environment, or CLI flags.
type Defaults struct {
	Base           string
	ProcessingMode string
	Embed          string
	CompactArrays  bool
	LogLevel       string
	LogFormatJSON  bool

	CacheSize int64
	CacheTTL  time.Duration
}

// Load reads configuration from (in increasing precedence) built-in
// defaults, the optional file at configFile (if non-empty) or a
// ".jsonld" file discovered in the working directory or $HOME, environment
// variables prefixed with JSONLD_, and any flags already registered on fs.
func Load(configFile string, fs *pflag.FlagSet) (*Defaults, error) {
	v := viper.New()

	v.SetDefault("base", "")
	v.SetDefault("processing_mode", jsonld.Mode11)
	v.SetDefault("embed", string(jsonld.EmbedOnce))
	v.SetDefault("compact_arrays", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("cache_size", int64(1<<20))
	v.SetDefault("cache_ttl", 5*time.Minute)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".jsonld")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound && configFile != "" {
			return nil, err
		}
	}

	v.SetEnvPrefix("jsonld")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	return &Defaults{
		Base:           v.GetString("base"),
		ProcessingMode: v.GetString("processing_mode"),
		Embed:          v.GetString("embed"),
		CompactArrays:  v.GetBool("compact_arrays"),
		LogLevel:       v.GetString("log_level"),
		LogFormatJSON:  v.GetBool("log_json"),
		CacheSize:      v.GetInt64("cache_size"),
		CacheTTL:       v.GetDuration("cache_ttl"),
	}, nil
}

// ApplyTo overlays the loaded defaults onto a fresh jsonld.Options value.
func (d *Defaults) ApplyTo(opts *jsonld.Options) {
	opts.Base = d.Base
	opts.ProcessingMode = d.ProcessingMode
	opts.Embed = jsonld.Embed(d.Embed)
	opts.CompactArrays = d.CompactArrays
}
