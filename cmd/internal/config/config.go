package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	EnvVarsPrefix = "/brdocs/prod/"

	defaultPort      = "7070"
	defaultBodyLimit = "1M"
	defaultLogLevel  = "INFO"
	defaultRegion    = "us-east-2"
)

type Config struct {
	Port        string
	BodyLimit   string
	CORSOrigins []string
	LogLevel    log.Lvl
	AWSRegion   string
	Production  bool
}

// ParameterStore is the slice of the SSM client used to load production variables.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// Load exports production parameters from SSM when GO_ENV=production,
// otherwise it loads .env if there is one. Then it reads the environment.
func Load(ctx context.Context) (*Config, error) {
	cfg := FromEnv()

	if cfg.Production {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}

		n, err := ExportParameters(ctx, ssm.NewFromConfig(awsCfg), EnvVarsPrefix)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d prod environment variables", n)
	} else if err := godotenv.Load(); err != nil {
		// A missing .env is fine, defaults and the real environment still apply
		log.Debugf("no .env loaded: %v", err)
	}

	// Exported parameters and .env values only show up after a second read
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment, filling in defaults.
func FromEnv() *Config {
	return &Config{
		Port:        envOr("PORT", defaultPort),
		BodyLimit:   envOr("BODY_LIMIT", defaultBodyLimit),
		CORSOrigins: splitList(envOr("CORS_ORIGINS", "*")),
		LogLevel:    parseLevel(envOr("LOG_LEVEL", defaultLogLevel)),
		AWSRegion:   envOr("AWS_REGION", defaultRegion),
		Production:  os.Getenv("GO_ENV") == "production",
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ExportParameters copies every parameter under prefix into the process
// environment, with the prefix stripped from the name. It returns how many
// variables were set.
func ExportParameters(ctx context.Context, store ParameterStore, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(store, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return count, fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}
	return count, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(raw string) log.Lvl {
	switch strings.ToUpper(raw) {
	case "DEBUG":
		return log.DEBUG
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
