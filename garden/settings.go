package garden

import (
	"errors"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

type Settings struct {
	ListenAddress string `yaml:"listenAddress"`
	DatabasePath  string `yaml:"databasePath"`
}

var (
	DefaultSettings = Settings{
		ListenAddress: ":8080",
		DatabasePath:  "./plants.sqlite",
	}
)

// LoadSettings reads the settings file at the given path. If no file
// exists yet, it is created with the default settings first.
func LoadSettings(path string) (Settings, error) {

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := yaml.Marshal(DefaultSettings)
		if err != nil {
			return Settings{}, err
		}

		if err := ioutil.WriteFile(path, data, 0644); err != nil {
			return Settings{}, err
		}

		return DefaultSettings, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
