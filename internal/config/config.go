package config

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
)

const prodParamPrefix = "/vetcrm/prod/"

// Config is the explicit configuration surface of the whole binary. Features
// whose credentials are absent degrade to explicit API errors instead of
// crashing the process, so only the database path is truly mandatory.
type Config struct {
	ListenAddr   string `envconfig:"listen_addr" default:":7070"`
	DatabasePath string `envconfig:"database_path" default:"vetcrm.db"`

	// MapsAPIKey enables the places proxy, street-view lookups and the
	// scraper's coordinate enrichment. Empty disables those endpoints.
	MapsAPIKey string `envconfig:"maps_api_key" default:""`

	S3Bucket string `envconfig:"s3_bucket_name" default:""`
	S3Region string `envconfig:"aws_s3_region" default:""`

	CognitoRegion   string `envconfig:"aws_cognito_region" default:""`
	CognitoPoolID   string `envconfig:"cognito_pool_id" default:""`
	CognitoClientID string `envconfig:"cognito_app_client_id" default:""`
}

// Load hydrates the environment (SSM Parameter Store in production, .env
// otherwise) and parses it into a Config.
func NewLoadedConfig() (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(); err != nil {
			return nil, err
		}
	} else {
		// Loads from .env, absence is fine for container setups
		_ = godotenv.Load()
	}

	var c Config
	if err := envconfig.Process("vetcrm", &c); err != nil {
		return nil, errors.WithStack(err)
	}
	return &c, nil
}

func (c *Config) HasMapsKey() bool {
	return c.MapsAPIKey != ""
}

func loadProdEnv() error {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to load SDK config")
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(prodParamPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		return errors.Wrap(err, "unable to load prod environment")
	}

	prefixLength := len(prodParamPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		if enverr := os.Setenv(key, value); enverr != nil {
			return errors.Wrapf(enverr, "unable to set environment variable %s", key)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
	return nil
}
