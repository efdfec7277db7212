/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the input file parameters consumed by the
// callers that build concrete lists and trees from parsed input. The
// container packages have no dependency on it.
package config

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	v "github.com/spf13/viper"
)

// configName is the base name of the properties file looked up when no
// explicit path is given: positional.properties.
const configName = "positional"

// Config holds the two input file paths read from the properties file.
type Config struct {
	// UsersFile is the path of the file declaring one user per line.
	UsersFile string

	// RelationsFile is the path of the file declaring one
	// "parent child" pair per line.
	RelationsFile string
}

// Load reads the configuration from the given path. When path is empty
// it looks for a positional.properties file in the working directory
// and then in the user home directory.
func Load(path string) (*Config, error) {
	conf := v.New()
	conf.SetConfigType("properties")

	if path != "" {
		conf.SetConfigFile(path)
	} else {
		conf.SetConfigName(configName)
		conf.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			conf.AddConfigPath(home)
		}
	}

	if err := conf.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &Config{
		UsersFile:     conf.GetString("users"),
		RelationsFile: conf.GetString("relations"),
	}
	if c.UsersFile == "" {
		return nil, fmt.Errorf("missing 'users' property in %s", conf.ConfigFileUsed())
	}
	if c.RelationsFile == "" {
		return nil, fmt.Errorf("missing 'relations' property in %s", conf.ConfigFileUsed())
	}
	return c, nil
}
