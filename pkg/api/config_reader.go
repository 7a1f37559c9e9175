package api

import (
	"context"
	"os"

	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	"github.com/sethvargo/go-password/password"
	yaml "gopkg.in/yaml.v2"
)

const envPrefix = "ALBUMLIST_"

// ConfigReader reads the relay config from file
type ConfigReader interface {
	ReadConfigFromFile(configPath string, decryptSecrets bool) (*APIConfig, error)
}

type configReaderImpl struct {
	secretHelper crypt.SecretHelper
	lookuper     envconfig.Lookuper
}

// NewConfigReader returns a new api.ConfigReader
func NewConfigReader(secretHelper crypt.SecretHelper) ConfigReader {
	return &configReaderImpl{
		secretHelper: secretHelper,
		lookuper:     envconfig.PrefixLookuper(envPrefix, envconfig.OsLookuper()),
	}
}

// ReadConfigFromFile reads the yaml config file, applies env var overrides and defaults and validates the result
func (h *configReaderImpl) ReadConfigFromFile(configPath string, decryptSecrets bool) (config *APIConfig, err error) {

	log.Info().Msgf("Reading %v file...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// decrypt secrets before unmarshalling
	if decryptSecrets {
		decryptedData, err := h.secretHelper.DecryptAllEnvelopes(string(data), "")
		if err != nil {
			return nil, err
		}

		data = []byte(decryptedData)
	}

	config = &APIConfig{}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// override values from envvars
	if err = envconfig.ProcessWith(context.Background(), config, h.lookuper); err != nil {
		return nil, err
	}

	config.SetDefaults()

	// generate a csrf seed if none is configured; links handed out before a restart stop working
	if config.APIServer.CSRFSeed == "" {
		log.Warn().Msg("No csrf seed configured, generating one for this process")
		config.APIServer.CSRFSeed, err = password.Generate(64, 10, 0, false, true)
		if err != nil {
			return nil, err
		}
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("Finished reading %v file successfully", configPath)

	return config, nil
}
